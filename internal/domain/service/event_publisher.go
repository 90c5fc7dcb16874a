package service

import (
	"context"
)

// LeadEvent represents a lead lifecycle event published for downstream
// consumers (CRM sync, sales notifications).
type LeadEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventType string `json:"event_type"`           // e.g. "lead.created"
	LeadID    string `json:"lead_id"`
	LeadType  string `json:"lead_type"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	City      string `json:"city,omitempty"`
	Source    string `json:"source"`
}

// EventTypeLeadCreated is emitted once per successful lead creation.
const EventTypeLeadCreated = "lead.created"

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLeadEvent publishes a lead event for async processing
	PublishLeadEvent(ctx context.Context, event *LeadEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// Package entity contains the core business objects of the project.
package entity

// LeadStatus represents the position of a lead in the sales pipeline.
type LeadStatus string

const (
	// LeadStatusNew is the sole initial status, assigned automatically on creation.
	LeadStatusNew LeadStatus = "new"
	// LeadStatusContacted indicates the sales team has reached out.
	LeadStatusContacted LeadStatus = "contacted"
	// LeadStatusSiteVisitScheduled indicates a measurement visit is booked.
	LeadStatusSiteVisitScheduled LeadStatus = "site_visit_scheduled"
	// LeadStatusQuoted indicates a quotation has been shared.
	LeadStatusQuoted LeadStatus = "quoted"
	// LeadStatusWon indicates the lead converted to an order.
	LeadStatusWon LeadStatus = "won"
	// LeadStatusLost indicates the lead did not convert.
	LeadStatusLost LeadStatus = "lost"
)

// String returns the string representation of the LeadStatus.
func (s LeadStatus) String() string {
	return string(s)
}

// IsValid checks if the LeadStatus is a known value.
//
// Status updates are deliberately permissive and do not call this; it exists
// for reporting and for policy layered on top of the pipeline.
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusSiteVisitScheduled,
		LeadStatusQuoted, LeadStatusWon, LeadStatusLost:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is expected from s.
func (s LeadStatus) IsTerminal() bool {
	return s == LeadStatusWon || s == LeadStatusLost
}

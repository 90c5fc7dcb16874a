package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateContactQR generates a PNG QR code encoding a contact deep link
	// such as a WhatsApp wa.me URL.
	GenerateContactQR(link string) ([]byte, error)
}

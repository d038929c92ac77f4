package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateTrackingQR generates a QR code image for sharing an order's
	// tracking reference.
	GenerateTrackingQR(orderID string) ([]byte, error)

	// ParseTrackingQR parses QR code data and returns the order ID.
	ParseTrackingQR(qrData string) (string, error)
}

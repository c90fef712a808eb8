package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProductQR renders a PNG QR code that links to the product page
	GenerateProductQR(productID uint) ([]byte, error)

	// ParseProductQR parses QR code payload data and returns the product ID
	ParseProductQR(qrData string) (uint, error)
}

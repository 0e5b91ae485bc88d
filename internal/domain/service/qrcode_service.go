package service

// QRCodeService renders share links as QR images.
type QRCodeService interface {
	// GeneratePNG encodes content as a PNG QR code.
	GeneratePNG(content string) ([]byte, error)
}

package service

import "github.com/google/uuid"

// QRCodeService generates order pickup codes. The PNG encodes the order id and
// order number so a shop can scan it at the counter.
type QRCodeService interface {
	// GeneratePickupQR renders the pickup code for an order as a PNG image.
	GeneratePickupQR(orderID uuid.UUID, orderNumber string) ([]byte, error)

	// ParsePickupQR decodes scanned pickup code data back into an order id.
	ParsePickupQR(qrData string) (uuid.UUID, error)
}

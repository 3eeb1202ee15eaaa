package qrcode

import (
	"encoding/json"
	"fmt"

	"imprisio/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the pickup code payload a shop scans at the counter.
type QRCodeData struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR renders the pickup code for an order as a PNG image.
func (s *qrcodeService) GeneratePickupQR(orderID uuid.UUID, orderNumber string) ([]byte, error) {
	data := QRCodeData{
		OrderID:     orderID.String(),
		OrderNumber: orderNumber,
		Type:        "pickup",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR decodes scanned pickup code data back into an order id.
func (s *qrcodeService) ParsePickupQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "pickup" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse order ID: %w", err)
	}

	return orderID, nil
}

package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePickupQR(uuid.New(), "ORD-123456ABC")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	orderID := uuid.New()

	data := QRCodeData{
		OrderID:     orderID.String(),
		OrderNumber: "ORD-123456ABC",
		Type:        "pickup",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParsePickupQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, orderID, parsedID)
}

func TestQRCodeService_ParsePickupQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParsePickupQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParsePickupQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		OrderID: uuid.New().String(),
		Type:    "subscription",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParsePickupQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParsePickupQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		OrderID: "not-a-valid-uuid",
		Type:    "pickup",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParsePickupQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse order ID")
}

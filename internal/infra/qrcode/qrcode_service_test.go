package qrcode

import (
	"encoding/json"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.True(t, len(data) > 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

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
		{"Non-positive size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			require.NotNil(t, service)

			qrBytes, err := service.GenerateOrderReceiptQR(42)
			require.NoError(t, err)
			assertPNG(t, qrBytes)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{}))
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"},
	}))
}

func TestQRCodeService_ParseOrderReceiptQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	jsonData, err := json.Marshal(QRCodeData{OrderID: "17", Type: "order_receipt"})
	require.NoError(t, err)

	orderID, err := service.ParseOrderReceiptQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, int64(17), orderID)
}

func TestQRCodeService_ParseOrderReceiptQR_Errors(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", `{"order_id":"1","type":"subscription"}`, "invalid QR code type"},
		{"non numeric id", `{"order_id":"abc","type":"order_receipt"}`, "invalid order ID"},
		{"zero id", `{"order_id":"0","type":"order_receipt"}`, "invalid order ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseOrderReceiptQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

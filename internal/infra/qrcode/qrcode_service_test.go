package qrcode

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *qrcodeService {
	return newQRCodeService(256, "M", "https://shop.example.com/")
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "m"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 0, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(&config.Config{
				QRCode:  &config.QRCodeConfig{Size: tt.size, ErrorCorrectionLevel: tt.errorCorrectionLevel},
				Catalog: &config.CatalogConfig{PublicBaseURL: "https://shop.example.com"},
			})
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_ProductURL(t *testing.T) {
	assert.Equal(t, "https://shop.example.com/products/42", newTestService().ProductURL(42))
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	qrBytes, err := newTestService().GenerateProductQR(42)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateProductQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		qrBytes, err := newQRCodeService(size, "M", "https://shop.example.com").GenerateProductQR(1)
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ParseProductQR(t *testing.T) {
	service := newTestService()

	id, err := service.ParseProductQR(service.ProductURL(42))
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestQRCodeService_ParseProductQR_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{"foreign host", "https://evil.example.com/products/42", "foreign host"},
		{"not a product link", "https://shop.example.com/brands/3", "not a product link"},
		{"non numeric id", "https://shop.example.com/products/abc", "invalid product id"},
		{"zero id", "https://shop.example.com/products/0", "invalid product id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService().ParseProductQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

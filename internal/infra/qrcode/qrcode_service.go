package qrcode

import (
	"net/url"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const productPathPrefix = "/products/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode and catalog sections.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := 0, "", ""
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}
	if cfg.Catalog != nil {
		baseURL = cfg.Catalog.PublicBaseURL
	}

	return newQRCodeService(size, level, baseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ProductURL is the link a product share code points at.
func (s *qrcodeService) ProductURL(productID uint) string {
	return s.baseURL + productPathPrefix + strconv.FormatUint(uint64(productID), 10)
}

// GenerateProductQR renders the product link as a PNG.
func (s *qrcodeService) GenerateProductQR(productID uint) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProductURL(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProductQR extracts the product id from a scanned product link. Links to
// another host than the configured storefront are rejected.
func (s *qrcodeService) ParseProductQR(qrData string) (uint, error) {
	link, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse QR code link")
	}

	if s.baseURL != "" {
		base, err := url.Parse(s.baseURL)
		if err == nil && !strings.EqualFold(base.Host, link.Host) {
			return 0, errors.Errorf("QR code points at foreign host %q", link.Host)
		}
	}

	idx := strings.LastIndex(link.Path, productPathPrefix)
	if idx < 0 {
		return 0, errors.Errorf("QR code link is not a product link: %s", link.Path)
	}

	id, err := strconv.ParseUint(link.Path[idx+len(productPathPrefix):], 10, 0)
	if err != nil || id == 0 {
		return 0, errors.Errorf("invalid product id in QR code link: %s", link.Path)
	}

	return uint(id), nil
}

package catalog

import (
	"strconv"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// RawFilters carries the listing parameters exactly as received.
type RawFilters struct {
	BrandID  string
	MinPrice string
	MaxPrice string
	Text     string
	Sort     string
}

// ParseFilters validates raw listing parameters. Blank values are treated as absent;
// malformed numbers are a validation error.
func ParseFilters(raw RawFilters) (Filters, error) {
	filters := Filters{
		Text: raw.Text,
		Sort: ParseSort(raw.Sort),
	}

	if s := strings.TrimSpace(raw.BrandID); s != "" {
		id, err := strconv.ParseUint(s, 10, 0)
		if err != nil || id == 0 {
			return Filters{}, domainerrors.NewValidationError("brand_id must be a positive integer, got %q", raw.BrandID)
		}
		brandID := uint(id)
		filters.BrandID = &brandID
	}

	var err error
	if filters.MinPrice, err = parsePrice("min_price", raw.MinPrice); err != nil {
		return Filters{}, err
	}
	if filters.MaxPrice, err = parsePrice("max_price", raw.MaxPrice); err != nil {
		return Filters{}, err
	}

	return filters, nil
}

func parsePrice(field, raw string) (*decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}

	price, err := decimal.NewFromString(s)
	if err != nil {
		return nil, domainerrors.NewValidationError("%s must be a number, got %q", field, raw)
	}
	if price.IsNegative() {
		return nil, domainerrors.NewValidationError("%s must not be negative", field)
	}

	return &price, nil
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Brand groups the products a seller is allowed to manage.
type Brand struct {
	ID   uint
	Name string
}

// Product is a catalog item. Variants and reviews are only populated by detail lookups.
type Product struct {
	ID          uint
	Name        string
	Price       decimal.Decimal // Never negative.
	Description string
	ImageURL    string
	BrandID     *uint  // Nil only for legacy rows; management requires a brand.
	Brand       *Brand // Populated by listing and detail queries.
	LikeCount   int64  // Only ever increases.
	Variants    []*ProductVariant
	Reviews     []*Review
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductVariant is a purchasable option of a product. (product, color, size) is not unique.
type ProductVariant struct {
	ID        uint
	ProductID uint
	Color     string
	Size      string
	Stock     int // Never negative.
}

// Review is an append-only comment on a product.
type Review struct {
	ID        uint
	ProductID uint
	Writer    string // Username of the author.
	Content   string
	CreatedAt time.Time
}

// BrandIDValue returns the brand id or zero when the product has none.
func (p *Product) BrandIDValue() uint {
	if p.BrandID == nil {
		return 0
	}

	return *p.BrandID
}

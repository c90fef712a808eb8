package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(255);not null;index"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_products_price_non_negative,price >= 0"`
	Description string          `gorm:"type:text;not null;default:''"`
	ImageURL    string          `gorm:"column:image_url;type:varchar(1024);not null;default:''"`
	BrandID     *uint           `gorm:"index"`
	LikeCount   int64           `gorm:"not null;default:0;check:chk_products_like_count_non_negative,like_count >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Brand    *BrandModel           `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
	Variants []ProductVariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews  []ReviewModel         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel mirrors the 'product_variants' table. (product_id, color, size) is intentionally not unique.
type ProductVariantModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ProductID uint   `gorm:"not null;index"`
	Color     string `gorm:"type:varchar(64);not null"`
	Size      string `gorm:"type:varchar(64);not null"`
	Stock     int    `gorm:"not null;default:0;check:chk_product_variants_stock_non_negative,stock >= 0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ProductID uint   `gorm:"not null;index"`
	Writer    string `gorm:"type:varchar(100);not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

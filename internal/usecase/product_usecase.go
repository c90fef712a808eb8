// Package usecase defines the application's use case interfaces and their input/output types.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductBaseInput holds the base product fields of a create or update submission.
type ProductBaseInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	ImageURL    string
	// BrandID is the submitted brand. Sellers are always pinned to their own brand;
	// for admins nil keeps the current brand on update and is rejected on create.
	BrandID *uint
}

// CreateProductInput represents a new product with its first variant.
type CreateProductInput struct {
	ProductBaseInput
	Color string
	Size  string
	Stock int
}

// ExistingVariantUpdate is one row of the existing-variant section of an update.
// A nil Stock means the row carries no change.
type ExistingVariantUpdate struct {
	VariantID uint
	Stock     *int
}

// NewVariantInput is one row of the new-variant section of an update.
type NewVariantInput struct {
	Color string
	Size  string
	Stock int
}

// UpdateProductInput is one product edit: base fields plus variant reconciliation.
type UpdateProductInput struct {
	ProductBaseInput
	ExistingUpdates []ExistingVariantUpdate
	DeleteIDs       []uint
	NewVariants     []NewVariantInput
}

// ProductDetail is a product with its variants and reviews, plus whether the viewer may manage it.
type ProductDetail struct {
	Product   *entity.Product `json:"product"`
	CanManage bool            `json:"can_manage"`
}

// UpdateProductOutput is the outcome of a product edit.
type UpdateProductOutput struct {
	Product *entity.Product              `json:"product"`
	Report  *entity.ReconciliationReport `json:"report"`
}

// ProductUsecase defines the product lifecycle use cases.
type ProductUsecase interface {
	// CreateProduct creates a product and its first variant atomically.
	CreateProduct(ctx context.Context, identity entity.Identity, input *CreateProductInput) (*entity.Product, error)

	// GetProductDetail loads a product with brand, variants and reviews.
	GetProductDetail(ctx context.Context, identity entity.Identity, productID uint) (*ProductDetail, error)

	// UpdateProduct updates base fields and reconciles the variant set.
	// When some variant rows fail the output is still returned together with a PartialReconciliationError.
	UpdateProduct(ctx context.Context, identity entity.Identity, productID uint, input *UpdateProductInput) (*UpdateProductOutput, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, identity entity.Identity, productID uint) error

	// LikeProduct increments the like counter of a product by one.
	LikeProduct(ctx context.Context, identity entity.Identity, productID uint) error

	// GenerateShareQR renders a QR code linking to the product page.
	GenerateShareQR(ctx context.Context, productID uint) ([]byte, error)

	// ResolveShareLink maps a scanned share link back to the product it points at.
	ResolveShareLink(ctx context.Context, identity entity.Identity, link string) (*ProductDetail, error)
}

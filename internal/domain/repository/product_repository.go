package repository

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when no product row matches.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when no variant row of the product matches.
	ErrVariantNotFound = errors.New("variant not found")
	// ErrInvalidBrandReference is returned when the referenced brand does not exist.
	ErrInvalidBrandReference = errors.New("brand does not exist")
)

// ProductRepository defines the operations on the products table.
type ProductRepository interface {
	// Create persists a new product and fills in its generated ID and timestamps.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves the product row with its brand, without variants or reviews.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// FindDetail retrieves the product with its brand, variants (id ASC) and reviews (newest first).
	FindDetail(ctx context.Context, id uint) (*entity.Product, error)

	// List returns every product matching the query, brand preloaded. No pagination.
	List(ctx context.Context, query catalog.Query) ([]*entity.Product, error)

	// UpdateBase overwrites name, price, description, image URL and brand of an existing product.
	UpdateBase(ctx context.Context, product *entity.Product) error

	// Delete removes the product row. Variants and reviews go with it through the foreign keys.
	Delete(ctx context.Context, id uint) error

	// IncrementLikes adds one to like_count in a single atomic statement.
	IncrementLikes(ctx context.Context, id uint) error
}

// VariantRepository defines the operations on the product_variants table.
// Every mutation is scoped to a product so a variant can never be moved or touched through another product.
type VariantRepository interface {
	// Create inserts a new variant for variant.ProductID and fills in its ID.
	Create(ctx context.Context, variant *entity.ProductVariant) error

	// ListIDsByProduct returns the IDs of every variant of the product.
	ListIDsByProduct(ctx context.Context, productID uint) ([]uint, error)

	// DeleteByIDs deletes the given variants of the product in one statement and returns the affected row count.
	DeleteByIDs(ctx context.Context, productID uint, ids []uint) (int64, error)

	// UpdateStock sets the stock of one variant of the product.
	UpdateStock(ctx context.Context, productID, variantID uint, stock int) error
}

// ReviewRepository defines the operations on the reviews table. Reviews are append-only.
type ReviewRepository interface {
	// Create persists a new review and fills in its ID and creation time.
	Create(ctx context.Context, review *entity.Review) error
}

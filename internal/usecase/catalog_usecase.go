package usecase

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
)

// CatalogUsecase defines the read side of the catalog plus brand administration.
type CatalogUsecase interface {
	// ListProducts returns every product matching the filters.
	ListProducts(ctx context.Context, filters catalog.Filters) ([]*entity.Product, error)

	// ListBrands returns every brand.
	ListBrands(ctx context.Context) ([]*entity.Brand, error)

	// CreateBrand adds a new brand. Admin only.
	CreateBrand(ctx context.Context, identity entity.Identity, name string) (*entity.Brand, error)
}

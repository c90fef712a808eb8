package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

var (
	// ErrBrandNotFound is returned when a brand is not found.
	ErrBrandNotFound = errors.New("brand not found")
	// ErrBrandNameTaken is returned when a brand with the same name exists.
	ErrBrandNameTaken = errors.New("brand name already taken")
)

// BrandRepository defines the operations on the brands table.
type BrandRepository interface {
	// List returns every brand ordered by name.
	List(ctx context.Context) ([]*entity.Brand, error)

	// FindByID retrieves a brand by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Brand, error)

	// Create persists a new brand and fills in its ID.
	Create(ctx context.Context, brand *entity.Brand) error
}

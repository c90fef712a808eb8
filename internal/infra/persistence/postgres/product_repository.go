// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product row. Associations are never written through this call.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidBrandReference
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("product price must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves the product row with its brand.
func (repo *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Brand").
		First(&productM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindDetail retrieves the product with brand, variants in id order and reviews newest first.
func (repo *productRepository) FindDetail(ctx context.Context, id uint) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Brand").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Order("id DESC")
		}).
		First(&productM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product detail")
	}

	return toProductDomain(&productM), nil
}

// List returns every product matching the query.
func (repo *productRepository) List(ctx context.Context, query catalog.Query) ([]*entity.Product, error) {
	var productModels []model.ProductModel

	err := repo.db.WithContext(ctx).
		Scopes(catalogScopes(query)...).
		Preload("Brand").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductDomain(&productModels[i]))
	}

	return products, nil
}

// UpdateBase overwrites the base fields of an existing product.
func (repo *productRepository) UpdateBase(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Updates(map[string]any{
			"name":        product.Name,
			"price":       product.Price,
			"description": product.Description,
			"image_url":   product.ImageURL,
			"brand_id":    product.BrandID,
		})
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidBrandReference
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("product price must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes the product row. Variants and reviews cascade at the storage level.
func (repo *productRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// IncrementLikes adds one to like_count with a single UPDATE so concurrent likes never get lost.
func (repo *productRepository) IncrementLikes(ctx context.Context, id uint) error {
	result := incrementLikes(repo.db.WithContext(ctx), id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to like product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// incrementLikes is evaluated by the database, never read-modify-write.
func incrementLikes(tx *gorm.DB, id uint) *gorm.DB {
	return tx.Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", 1))
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		BrandID:     data.BrandID,
		Brand:       toBrandDomain(data.Brand),
		LikeCount:   data.LikeCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Variants != nil {
		product.Variants = make([]*entity.ProductVariant, 0, len(data.Variants))
		for i := range data.Variants {
			product.Variants = append(product.Variants, toVariantDomain(&data.Variants[i]))
		}
	}

	if data.Reviews != nil {
		product.Reviews = make([]*entity.Review, 0, len(data.Reviews))
		for i := range data.Reviews {
			product.Reviews = append(product.Reviews, toReviewDomain(&data.Reviews[i]))
		}
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel. Associations are not mapped.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		BrandID:     data.BrandID,
		LikeCount:   data.LikeCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

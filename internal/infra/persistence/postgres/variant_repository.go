package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository is the constructor for variantRepository.
func NewVariantRepository(db *gorm.DB) repository.VariantRepository {
	return &variantRepository{db: db}
}

func (repo *variantRepository) Create(ctx context.Context, variant *entity.ProductVariant) error {
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Create(variantM).Error; err != nil {
		switch {
		case isForeignKeyConstraintViolation(err):
			return repository.ErrProductNotFound
		case isCheckConstraintViolation(err):
			return domainerrors.NewValidationError("stock must not be negative")
		case isNotNullConstraintViolation(err):
			return domainerrors.NewValidationError("variant color and size are required")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product variant")
	}

	variant.ID = variantM.ID

	return nil
}

func (repo *variantRepository) ListIDsByProduct(ctx context.Context, productID uint) ([]uint, error) {
	var ids []uint

	err := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Where("product_id = ?", productID).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list variant ids")
	}

	return ids, nil
}

func (repo *variantRepository) DeleteByIDs(ctx context.Context, productID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := deleteScopedVariants(repo.db.WithContext(ctx), productID, ids)
	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete product variants")
	}

	return result.RowsAffected, nil
}

func (repo *variantRepository) UpdateStock(ctx context.Context, productID, variantID uint, stock int) error {
	result := updateScopedStock(repo.db.WithContext(ctx), productID, variantID, stock)
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("stock must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update variant stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// deleteScopedVariants and updateScopedStock always carry product_id, so an id
// submitted for another product matches nothing.
func deleteScopedVariants(tx *gorm.DB, productID uint, ids []uint) *gorm.DB {
	return tx.Where("product_id = ? AND id IN ?", productID, ids).
		Delete(&model.ProductVariantModel{})
}

func updateScopedStock(tx *gorm.DB, productID, variantID uint, stock int) *gorm.DB {
	return tx.Model(&model.ProductVariantModel{}).
		Where("id = ? AND product_id = ?", variantID, productID).
		UpdateColumn("stock", stock)
}

func toVariantDomain(data *model.ProductVariantModel) *entity.ProductVariant {
	if data == nil {
		return nil
	}

	return &entity.ProductVariant{
		ID:        data.ID,
		ProductID: data.ProductID,
		Color:     data.Color,
		Size:      data.Size,
		Stock:     data.Stock,
	}
}

func fromVariantDomain(data *entity.ProductVariant) *model.ProductVariantModel {
	if data == nil {
		return nil
	}

	return &model.ProductVariantModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		Color:     data.Color,
		Size:      data.Size,
		Stock:     data.Stock,
	}
}

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

type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

func (repo *brandRepository) List(ctx context.Context) ([]*entity.Brand, error) {
	var brandModels []model.BrandModel

	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for i := range brandModels {
		brands = append(brands, toBrandDomain(&brandModels[i]))
	}

	return brands, nil
}

func (repo *brandRepository) FindByID(ctx context.Context, id uint) (*entity.Brand, error) {
	var brandM model.BrandModel

	if err := repo.db.WithContext(ctx).First(&brandM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	return toBrandDomain(&brandM), nil
}

func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brandM := &model.BrandModel{Name: brand.Name}

	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrBrandNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	brand.ID = brandM.ID

	return nil
}

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:   data.ID,
		Name: data.Name,
	}
}

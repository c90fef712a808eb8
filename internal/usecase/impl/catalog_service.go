package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
	brandRepo   repository.BrandRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	BrandRepo   repository.BrandRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		brandRepo:   params.BrandRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the full matching set. An empty result is not an error.
func (srv *catalogService) ListProducts(ctx context.Context, filters catalog.Filters) ([]*entity.Product, error) {
	query := catalog.BuildQuery(filters)

	products, err := srv.productRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	srv.log(ctx).Debug("Products listed", slog.Int("count", len(products)), slog.String("sort", string(filters.Sort)))

	return products, nil
}

func (srv *catalogService) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	brands, err := srv.brandRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// CreateBrand is reserved to admins.
func (srv *catalogService) CreateBrand(ctx context.Context, identity entity.Identity, name string) (*entity.Brand, error) {
	switch identity.(type) {
	case entity.Admin:
	case entity.RegularUser, entity.Seller:
		return nil, domainerrors.ErrOwnership.WithDetails("only admins can create brands")
	default:
		return nil, domainerrors.ErrUnauthenticated
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.NewValidationError("brand name is required")
	}

	brand := &entity.Brand{Name: name}
	if err := srv.brandRepo.Create(ctx, brand); err != nil {
		if errors.Is(err, repository.ErrBrandNameTaken) {
			return nil, domainerrors.ErrBrandAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create brand")
	}

	srv.log(ctx).Info("Brand created", slog.Any("brandID", brand.ID), slog.String("name", brand.Name))

	return brand, nil
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultReconcileConcurrency = 4

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
	qrService   service.QRCodeService
	events      *catalogEventEmitter
	concurrency int
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	VariantRepo repository.VariantRepository
	QRService   service.QRCodeService
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	concurrency := defaultReconcileConcurrency
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.ReconcileConcurrency > 0 {
		concurrency = params.Config.Catalog.ReconcileConcurrency
	}

	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		variantRepo: params.VariantRepo,
		qrService:   params.QRService,
		events:      newCatalogEventEmitter(params.Publisher),
		concurrency: concurrency,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct writes the product and its first variant in one transaction.
func (srv *productService) CreateProduct(ctx context.Context, identity entity.Identity, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := policy.RequireManager(identity); err != nil {
		return nil, err
	}

	if err := validateProductBase(&input.ProductBaseInput); err != nil {
		return nil, err
	}

	color, size := strings.TrimSpace(input.Color), strings.TrimSpace(input.Size)
	if color == "" || size == "" {
		return nil, domainerrors.NewValidationError("color and size are required")
	}
	if input.Stock < 0 {
		return nil, domainerrors.NewValidationError("stock must not be negative")
	}

	brandID := policy.EffectiveBrandID(identity, input.BrandID)
	if brandID == nil {
		return nil, domainerrors.NewValidationError("brand_id is required")
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		BrandID:     brandID,
	}
	variant := &entity.ProductVariant{
		Color: color,
		Size:  size,
		Stock: input.Stock,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		brand, err := repoFactory.BrandRepo().FindByID(ctx, *brandID)
		if err != nil {
			return errors.Wrap(err, "failed to load brand")
		}

		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		variant.ProductID = product.ID
		if err := repoFactory.VariantRepo().Create(ctx, variant); err != nil {
			return errors.Wrap(err, "failed to create first variant")
		}

		product.Brand = brand
		product.Variants = []*entity.ProductVariant{variant}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("brandID", *brandID), slog.Any("error", err))

		return nil, mapCatalogError(err)
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("brandID", *brandID))
	srv.events.emit(ctx, srv.log(ctx), constants.EventProductCreated, identity, product, nil)

	return product, nil
}

// GetProductDetail loads the product with brand, variants and reviews.
func (srv *productService) GetProductDetail(ctx context.Context, identity entity.Identity, productID uint) (*usecase.ProductDetail, error) {
	product, err := srv.productRepo.FindDetail(ctx, productID)
	if err != nil {
		return nil, mapCatalogError(err)
	}

	return &usecase.ProductDetail{
		Product:   product,
		CanManage: policy.CanManage(identity, product.BrandID),
	}, nil
}

// UpdateProduct authorizes the edit, writes the base fields and reconciles the variant set.
// Variant rows are applied independently; rows that already succeeded stay applied when others fail.
func (srv *productService) UpdateProduct(
	ctx context.Context,
	identity entity.Identity,
	productID uint,
	input *usecase.UpdateProductInput,
) (*usecase.UpdateProductOutput, error) {
	product, err := srv.loadManageable(ctx, identity, productID)
	if err != nil {
		return nil, err
	}

	if err := validateProductBase(&input.ProductBaseInput); err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Price = input.Price
	product.Description = input.Description
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	if brandID := policy.EffectiveBrandID(identity, input.BrandID); brandID != nil {
		product.BrandID = brandID
	}

	if err := srv.productRepo.UpdateBase(ctx, product); err != nil {
		return nil, mapCatalogError(err)
	}

	existingIDs, err := srv.variantRepo.ListIDsByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product variants")
	}

	plan := PlanReconciliation(productID, existingIDs, input)
	if !plan.IsEmpty() {
		rec := &reconciler{variants: srv.variantRepo, concurrency: srv.concurrency, logger: srv.log(ctx)}
		rec.apply(ctx, productID, plan)
	}

	report := plan.Report
	srv.log(ctx).Info("Product updated",
		slog.Any("productID", productID),
		slog.Int("deleted", report.Count(entity.RowActionDelete, entity.RowStatusApplied)),
		slog.Int("updated", report.Count(entity.RowActionUpdate, entity.RowStatusApplied)),
		slog.Int("created", report.Count(entity.RowActionCreate, entity.RowStatusApplied)),
		slog.Int("failed", len(report.Failed())),
	)

	if detail, err := srv.productRepo.FindDetail(ctx, productID); err == nil {
		product = detail
	} else {
		srv.log(ctx).Warn("Failed to reload product after update", slog.Any("productID", productID), slog.Any("error", err))
	}

	srv.events.emit(ctx, srv.log(ctx), constants.EventProductUpdated, identity, product, report)

	output := &usecase.UpdateProductOutput{Product: product, Report: report}
	if report.HasFailures() {
		return output, domainerrors.NewPartialReconciliationError(report)
	}

	return output, nil
}

// DeleteProduct removes the product row after the same checks as an update.
func (srv *productService) DeleteProduct(ctx context.Context, identity entity.Identity, productID uint) error {
	product, err := srv.loadManageable(ctx, identity, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return mapCatalogError(err)
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))
	srv.events.emit(ctx, srv.log(ctx), constants.EventProductDeleted, identity, product, nil)

	return nil
}

// LikeProduct adds one like. Repeated calls keep counting; likes are not tracked per user.
func (srv *productService) LikeProduct(ctx context.Context, identity entity.Identity, productID uint) error {
	if _, err := policy.RequireAuthenticated(identity); err != nil {
		return err
	}

	if err := srv.productRepo.IncrementLikes(ctx, productID); err != nil {
		return mapCatalogError(err)
	}

	srv.events.emit(ctx, srv.log(ctx), constants.EventProductLiked, identity, &entity.Product{ID: productID}, nil)

	return nil
}

// GenerateShareQR renders the share code of an existing product.
func (srv *productService) GenerateShareQR(ctx context.Context, productID uint) ([]byte, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		return nil, mapCatalogError(err)
	}

	png, err := srv.qrService.GenerateProductQR(productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

// ResolveShareLink accepts only links produced by GenerateShareQR for this storefront.
func (srv *productService) ResolveShareLink(ctx context.Context, identity entity.Identity, link string) (*usecase.ProductDetail, error) {
	productID, err := srv.qrService.ParseProductQR(link)
	if err != nil {
		return nil, domainerrors.NewValidationError("not a product share link: %v", err)
	}

	return srv.GetProductDetail(ctx, identity, productID)
}

// loadManageable runs the management gate shared by update and delete. Identities that can
// never manage, including sellers without a brand, are rejected before the product is loaded.
func (srv *productService) loadManageable(ctx context.Context, identity entity.Identity, productID uint) (*entity.Product, error) {
	if err := policy.RequireManager(identity); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapCatalogError(err)
	}

	if err := policy.AuthorizeManage(identity, product.BrandID); err != nil {
		srv.log(ctx).Warn("Product management denied",
			slog.Any("productID", productID),
			slog.String("role", entity.RoleOf(identity).String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	return product, nil
}

func validateProductBase(input *usecase.ProductBaseInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.NewValidationError("product_name is required")
	}
	if input.Price.IsNegative() {
		return domainerrors.NewValidationError("price must not be negative")
	}

	return nil
}

// mapCatalogError translates repository sentinels into domain errors.
func mapCatalogError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrBrandNotFound), errors.Is(err, repository.ErrInvalidBrandReference):
		return domainerrors.ErrBrandNotFound
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, "catalog operation failed")
}

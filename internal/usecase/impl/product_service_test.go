package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
	variantRepo *mockRepo.MockVariantRepository
	qrService   *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
}

func createTestProductService(t *testing.T) productServiceFixtures {
	fx := productServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		variantRepo: mockRepo.NewMockVariantRepository(t),
		qrService:   mockSvc.NewMockQRCodeService(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewProductService(ProductServiceParams{
		TxManager:   fx.txManager,
		ProductRepo: fx.productRepo,
		VariantRepo: fx.variantRepo,
		QRService:   fx.qrService,
		Publisher:   fx.publisher,
		Config: &config.Config{
			Catalog: &config.CatalogConfig{ReconcileConcurrency: 2},
		},
		Logger: newDiscardLogger(),
	})

	return fx
}

func (fx productServiceFixtures) expectEvent(eventType string) {
	fx.publisher.EXPECT().
		PublishCatalogEvent(mock.Anything, mock.MatchedBy(func(e *service.CatalogEvent) bool {
			return e.Type == eventType
		})).
		Return(nil)
}

// expectTx runs the transaction callback against a factory serving the given repositories.
func (fx productServiceFixtures) expectTx(t *testing.T, brandRepo *mockRepo.MockBrandRepository, productRepo *mockRepo.MockProductRepository, variantRepo *mockRepo.MockVariantRepository) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().BrandRepo().Return(brandRepo).Maybe()
			factory.EXPECT().ProductRepo().Return(productRepo).Maybe()
			factory.EXPECT().VariantRepo().Return(variantRepo).Maybe()

			return fn(factory)
		})
}

func newCreateInput(brandID *uint) *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		ProductBaseInput: usecase.ProductBaseInput{
			Name:        "Linen Shirt",
			Price:       decimal.RequireFromString("49.90"),
			Description: "Breathable",
			BrandID:     brandID,
		},
		Color: "Red",
		Size:  "M",
	}
}

func TestProductService_CreateProduct_SellerBrandIsPinned(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	brandRepo := mockRepo.NewMockBrandRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	variantRepo := mockRepo.NewMockVariantRepository(t)
	fx.expectTx(t, brandRepo, productRepo, variantRepo)

	brandRepo.EXPECT().FindByID(ctx, uint(5)).Return(&entity.Brand{ID: 5, Name: "Acme"}, nil)
	productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.BrandID != nil && *p.BrandID == 5 && p.Name == "Linen Shirt"
		})).
		Run(func(_ context.Context, p *entity.Product) { p.ID = 11 }).
		Return(nil)
	variantRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(v *entity.ProductVariant) bool {
			return v.ProductID == 11 && v.Color == "Red" && v.Size == "M" && v.Stock == 0
		})).
		Return(nil)
	fx.expectEvent(constants.EventProductCreated)

	// The seller claims brand 7; brand 5 is stored.
	product, err := fx.service.CreateProduct(ctx, testSeller5, newCreateInput(uintPtr(7)))

	require.NoError(t, err)
	assert.Equal(t, uint(11), product.ID)
	assert.Equal(t, uint(5), *product.BrandID)
	assert.Equal(t, "Acme", product.Brand.Name)
	require.Len(t, product.Variants, 1)
}

func TestProductService_CreateProduct_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		identity entity.Identity
		input    *usecase.CreateProductInput
		wantErr  error
	}{
		{"anonymous", testAnonymous, newCreateInput(uintPtr(5)), domainerrors.ErrUnauthenticated},
		{"plain user", testShopper, newCreateInput(uintPtr(5)), domainerrors.ErrOwnership},
		{"seller without brand", testSellerNoBrd, newCreateInput(uintPtr(5)), domainerrors.ErrMissingBrandAssignment},
		{"admin without brand", testAdmin, newCreateInput(nil), domainerrors.ErrValidationFailed},
		{"missing name", testAdmin, func() *usecase.CreateProductInput {
			in := newCreateInput(uintPtr(5))
			in.Name = "  "

			return in
		}(), domainerrors.ErrValidationFailed},
		{"negative price", testAdmin, func() *usecase.CreateProductInput {
			in := newCreateInput(uintPtr(5))
			in.Price = decimal.NewFromInt(-1)

			return in
		}(), domainerrors.ErrValidationFailed},
		{"missing size", testSeller5, func() *usecase.CreateProductInput {
			in := newCreateInput(nil)
			in.Size = ""

			return in
		}(), domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)

			_, err := fx.service.CreateProduct(context.Background(), tt.identity, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductService_CreateProduct_UnknownBrand(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	brandRepo := mockRepo.NewMockBrandRepository(t)
	fx.expectTx(t, brandRepo, nil, nil)
	brandRepo.EXPECT().FindByID(ctx, uint(42)).Return(nil, repository.ErrBrandNotFound)

	_, err := fx.service.CreateProduct(ctx, testAdmin, newCreateInput(uintPtr(42)))

	assert.ErrorIs(t, err, domainerrors.ErrBrandNotFound)
}

func TestProductService_GetProductDetail(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindDetail(ctx, uint(3)).Return(&entity.Product{ID: 3, BrandID: uintPtr(5)}, nil).Times(3)

	detail, err := fx.service.GetProductDetail(ctx, testSeller5, 3)
	require.NoError(t, err)
	assert.True(t, detail.CanManage)

	detail, err = fx.service.GetProductDetail(ctx, testAnonymous, 3)
	require.NoError(t, err)
	assert.False(t, detail.CanManage)

	detail, err = fx.service.GetProductDetail(ctx, testAdmin, 3)
	require.NoError(t, err)
	assert.True(t, detail.CanManage)
}

func TestProductService_GetProductDetail_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindDetail(ctx, uint(3)).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProductDetail(ctx, testAnonymous, 3)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func newUpdateInput(brandID *uint) *usecase.UpdateProductInput {
	return &usecase.UpdateProductInput{
		ProductBaseInput: usecase.ProductBaseInput{
			Name:    "Linen Shirt",
			Price:   decimal.NewFromInt(59),
			BrandID: brandID,
		},
	}
}

func TestProductService_UpdateProduct_Scenario(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	input := newUpdateInput(uintPtr(7))
	input.ExistingUpdates = []usecase.ExistingVariantUpdate{{VariantID: 1, Stock: intPtr(10)}}
	input.DeleteIDs = []uint{2}
	input.NewVariants = []usecase.NewVariantInput{{Color: "Blue", Size: "S", Stock: 7}}

	fx.productRepo.EXPECT().FindByID(ctx, uint(9)).Return(&entity.Product{ID: 9, BrandID: uintPtr(5)}, nil)
	fx.productRepo.EXPECT().
		UpdateBase(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return *p.BrandID == 5 && p.Price.Equal(decimal.NewFromInt(59))
		})).
		Return(nil)
	fx.variantRepo.EXPECT().ListIDsByProduct(ctx, uint(9)).Return([]uint{1, 2}, nil)
	fx.variantRepo.EXPECT().DeleteByIDs(ctx, uint(9), []uint{2}).Return(1, nil)
	fx.variantRepo.EXPECT().UpdateStock(ctx, uint(9), uint(1), 10).Return(nil)
	fx.variantRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ProductVariant")).Return(nil)
	fx.productRepo.EXPECT().FindDetail(ctx, uint(9)).Return(&entity.Product{
		ID:      9,
		BrandID: uintPtr(5),
		Variants: []*entity.ProductVariant{
			{ID: 1, ProductID: 9, Color: "Red", Size: "M", Stock: 10},
			{ID: 3, ProductID: 9, Color: "Blue", Size: "S", Stock: 7},
		},
	}, nil)
	fx.expectEvent(constants.EventProductUpdated)

	output, err := fx.service.UpdateProduct(ctx, testSeller5, 9, input)

	require.NoError(t, err)
	assert.Len(t, output.Product.Variants, 2)
	assert.Len(t, output.Report.Rows, 3)
	assert.False(t, output.Report.HasFailures())
}

func TestProductService_UpdateProduct_AdminKeepsBrandWhenNotSubmitted(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, uint(9)).Return(&entity.Product{ID: 9, BrandID: uintPtr(5)}, nil)
	fx.productRepo.EXPECT().
		UpdateBase(ctx, mock.MatchedBy(func(p *entity.Product) bool { return *p.BrandID == 5 })).
		Return(nil)
	fx.variantRepo.EXPECT().ListIDsByProduct(ctx, uint(9)).Return(nil, nil)
	fx.productRepo.EXPECT().FindDetail(ctx, uint(9)).Return(&entity.Product{ID: 9, BrandID: uintPtr(5)}, nil)
	fx.expectEvent(constants.EventProductUpdated)

	_, err := fx.service.UpdateProduct(ctx, testAdmin, 9, newUpdateInput(nil))

	require.NoError(t, err)
}

func TestProductService_UpdateProduct_OtherBrandIsOwnershipViolation(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, uint(9)).Return(&entity.Product{ID: 9, BrandID: uintPtr(7)}, nil)

	_, err := fx.service.UpdateProduct(ctx, testSeller5, 9, newUpdateInput(nil))

	assert.ErrorIs(t, err, domainerrors.ErrOwnership)
	fx.productRepo.AssertNotCalled(t, "UpdateBase", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_SellerWithoutBrandNeverTouchesStorage(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.UpdateProduct(context.Background(), testSellerNoBrd, 9, newUpdateInput(nil))

	assert.ErrorIs(t, err, domainerrors.ErrMissingBrandAssignment)
}

func TestProductService_UpdateProduct_PartialFailure(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	input := newUpdateInput(nil)
	input.ExistingUpdates = []usecase.ExistingVariantUpdate{
		{VariantID: 1, Stock: intPtr(1)},
		{VariantID: 2, Stock: intPtr(2)},
	}

	fx.productRepo.EXPECT().FindByID(ctx, uint(9)).Return(&entity.Product{ID: 9, BrandID: uintPtr(5)}, nil)
	fx.productRepo.EXPECT().UpdateBase(ctx, mock.Anything).Return(nil)
	fx.variantRepo.EXPECT().ListIDsByProduct(ctx, uint(9)).Return([]uint{1, 2}, nil)
	fx.variantRepo.EXPECT().UpdateStock(ctx, uint(9), uint(1), 1).Return(nil)
	fx.variantRepo.EXPECT().UpdateStock(ctx, uint(9), uint(2), 2).Return(errors.New("timeout"))
	fx.productRepo.EXPECT().FindDetail(ctx, uint(9)).Return(nil, errors.New("timeout"))
	fx.expectEvent(constants.EventProductUpdated)

	output, err := fx.service.UpdateProduct(ctx, testAdmin, 9, input)

	var partial *domainerrors.PartialReconciliationError
	require.ErrorAs(t, err, &partial)
	require.NotNil(t, output)
	assert.Same(t, output.Report, partial.Report)
	assert.Equal(t, 1, output.Report.Count(entity.RowActionUpdate, entity.RowStatusApplied))
	assert.Len(t, output.Report.Failed(), 1)
	assert.Equal(t, uint(9), output.Product.ID)
}

func TestProductService_DeleteProduct_AnonymousIsRejected(t *testing.T) {
	fx := createTestProductService(t)

	err := fx.service.DeleteProduct(context.Background(), testAnonymous, 9)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	fx.productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, uint(9)).Return(&entity.Product{ID: 9, BrandID: uintPtr(5)}, nil)
	fx.productRepo.EXPECT().Delete(ctx, uint(9)).Return(nil)
	fx.expectEvent(constants.EventProductDeleted)

	require.NoError(t, fx.service.DeleteProduct(ctx, testSeller5, 9))
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, uint(9)).Return(nil, repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, testAdmin, 9)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_LikeProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().IncrementLikes(ctx, uint(9)).Return(nil).Twice()
	fx.expectEvent(constants.EventProductLiked)

	require.NoError(t, fx.service.LikeProduct(ctx, testShopper, 9))
	require.NoError(t, fx.service.LikeProduct(ctx, testShopper, 9))
}

func TestProductService_LikeProduct_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().IncrementLikes(ctx, uint(9)).Return(nil)
	fx.publisher.EXPECT().PublishCatalogEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	assert.NoError(t, fx.service.LikeProduct(ctx, testShopper, 9))
}

func TestProductService_LikeProduct_Errors(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	assert.ErrorIs(t, fx.service.LikeProduct(ctx, testAnonymous, 9), domainerrors.ErrUnauthenticated)

	fx.productRepo.EXPECT().IncrementLikes(ctx, uint(404)).Return(repository.ErrProductNotFound)
	assert.ErrorIs(t, fx.service.LikeProduct(ctx, testShopper, 404), domainerrors.ErrProductNotFound)
}

func TestProductService_GenerateShareQR(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, uint(9)).Return(&entity.Product{ID: 9}, nil)
	fx.qrService.EXPECT().GenerateProductQR(uint(9)).Return([]byte("png"), nil)

	png, err := fx.service.GenerateShareQR(ctx, 9)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestProductService_ResolveShareLink(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	link := "https://shop.example.com/products/3"

	fx.qrService.EXPECT().ParseProductQR(link).Return(uint(3), nil)
	fx.productRepo.EXPECT().FindDetail(ctx, uint(3)).Return(&entity.Product{ID: 3, BrandID: uintPtr(5)}, nil)

	detail, err := fx.service.ResolveShareLink(ctx, testSeller5, link)

	require.NoError(t, err)
	assert.Equal(t, uint(3), detail.Product.ID)
	assert.True(t, detail.CanManage)
}

func TestProductService_ResolveShareLink_ForeignLink(t *testing.T) {
	fx := createTestProductService(t)
	link := "https://elsewhere.example.com/products/3"

	fx.qrService.EXPECT().ParseProductQR(link).Return(uint(0), errors.New("QR code points at foreign host"))

	_, err := fx.service.ResolveShareLink(context.Background(), testAnonymous, link)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

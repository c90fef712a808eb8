package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/catalog"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves product listings and brands.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalogUC usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, logger: logger}
}

type createBrandRequest struct {
	Name string `json:"name" form:"name" validate:"required,max=100"`
}

// ListProducts returns the products matching brand_id, min_price, max_price, qs and sort.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filters, err := catalog.ParseFilters(catalog.RawFilters{
		BrandID:  c.QueryParam("brand_id"),
		MinPrice: c.QueryParam("min_price"),
		MaxPrice: c.QueryParam("max_price"),
		Text:     c.QueryParam("qs"),
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return err
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), filters)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

// ListBrands returns every brand.
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.catalogUC.ListBrands(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBrandResponses(brands))
}

// CreateBrand adds a brand. Admin only.
func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	var req createBrandRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	brand, err := h.catalogUC.CreateBrand(c.Request().Context(), deliverycontext.GetIdentity(c), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBrandResponse(brand))
}

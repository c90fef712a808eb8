// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/form"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler serves product detail and management endpoints.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(productUC usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{productUC: productUC, logger: logger}
}

type productBaseRequest struct {
	Name        string           `json:"product_name" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	BrandID     *uint            `json:"brand_id"`
}

func (r *productBaseRequest) toInput() usecase.ProductBaseInput {
	return usecase.ProductBaseInput{
		Name:        r.Name,
		Price:       *r.Price,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		BrandID:     r.BrandID,
	}
}

type createProductRequest struct {
	productBaseRequest
	Color string `json:"color" validate:"required"`
	Size  string `json:"size" validate:"required"`
	Stock int    `json:"stock" validate:"gte=0"`
}

type existingVariantRequest struct {
	VariantID uint `json:"variant_id" validate:"required"`
	Stock     *int `json:"stock"`
}

type newVariantRequest struct {
	Color string `json:"color"`
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

type updateProductRequest struct {
	productBaseRequest
	Existing    []existingVariantRequest `json:"existing" validate:"dive"`
	DeleteIDs   []uint                   `json:"delete_ids"`
	NewVariants []newVariantRequest      `json:"new_variants"`
}

func (r *updateProductRequest) toInput() *usecase.UpdateProductInput {
	input := &usecase.UpdateProductInput{
		ProductBaseInput: r.productBaseRequest.toInput(),
		DeleteIDs:        r.DeleteIDs,
	}
	for _, row := range r.Existing {
		input.ExistingUpdates = append(input.ExistingUpdates, usecase.ExistingVariantUpdate{VariantID: row.VariantID, Stock: row.Stock})
	}
	for _, row := range r.NewVariants {
		input.NewVariants = append(input.NewVariants, usecase.NewVariantInput{Color: row.Color, Size: row.Size, Stock: row.Stock})
	}

	return input
}

// GetProduct returns a product with its variants, reviews and the viewer's management flag.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.productUC.GetProductDetail(c.Request().Context(), deliverycontext.GetIdentity(c), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, productDetailResponse{
		Product:   toProductResponse(detail.Product),
		CanManage: detail.CanManage,
	})
}

// CreateProduct creates a product with its first variant from a form or JSON body.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input *usecase.CreateProductInput

	if isJSONRequest(c) {
		var req createProductRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		input = &usecase.CreateProductInput{
			ProductBaseInput: req.toInput(),
			Color:            req.Color,
			Size:             req.Size,
			Stock:            req.Stock,
		}
	} else {
		values, err := c.FormParams()
		if err != nil {
			return domainerrors.NewValidationError("malformed form body")
		}
		if input, err = form.CreateProduct(values); err != nil {
			return err
		}
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), deliverycontext.GetIdentity(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

// UpdateProduct edits the base fields and reconciles the variants of a product.
// When some variant rows fail the response is a 207 carrying the full row report.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateProductInput
	var issues []form.Issue

	if isJSONRequest(c) {
		var req updateProductRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		input = req.toInput()
	} else {
		values, err := c.FormParams()
		if err != nil {
			return domainerrors.NewValidationError("malformed form body")
		}
		if input, issues, err = form.UpdateProduct(values); err != nil {
			return err
		}
	}

	output, err := h.productUC.UpdateProduct(c.Request().Context(), deliverycontext.GetIdentity(c), productID, input)

	var partialErr *domainerrors.PartialReconciliationError
	if errors.As(err, &partialErr) && output != nil {
		return response.Error(c, partialErr.HTTPCode(), partialErr.ErrorCode(), partialErr.Message(), updateProductResponse{
			Product: toProductResponse(output.Product),
			Report:  output.Report,
			Issues:  issues,
		})
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updateProductResponse{
		Product: toProductResponse(output.Product),
		Report:  output.Report,
		Issues:  issues,
	})
}

// DeleteProduct removes a product.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), deliverycontext.GetIdentity(c), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// LikeProduct adds one like to a product.
func (h *ProductHandler) LikeProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.LikeProduct(c.Request().Context(), deliverycontext.GetIdentity(c), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]uint{"product_id": productID})
}

// ShareQR renders the PNG share code of a product.
func (h *ProductHandler) ShareQR(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.productUC.GenerateShareQR(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveShareLink turns a scanned share link back into the product detail.
func (h *ProductHandler) ResolveShareLink(c echo.Context) error {
	link := strings.TrimSpace(c.QueryParam("link"))
	if link == "" {
		return domainerrors.NewValidationError("query parameter %q is required", "link")
	}

	detail, err := h.productUC.ResolveShareLink(c.Request().Context(), deliverycontext.GetIdentity(c), link)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, productDetailResponse{
		Product:   toProductResponse(detail.Product),
		CanManage: detail.CanManage,
	})
}

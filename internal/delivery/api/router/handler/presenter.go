package handler

import (
	"time"

	"storefront/internal/delivery/api/form"
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type brandResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type variantResponse struct {
	ID    uint   `json:"id"`
	Color string `json:"color"`
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

type reviewResponse struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"product_id"`
	Writer    string    `json:"writer"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type productResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"product_name"`
	Price       decimal.Decimal   `json:"price"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url"`
	BrandID     *uint             `json:"brand_id"`
	Brand       *brandResponse    `json:"brand,omitempty"`
	LikeCount   int64             `json:"like_count"`
	Variants    []variantResponse `json:"variants,omitempty"`
	Reviews     []reviewResponse  `json:"reviews,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type productDetailResponse struct {
	Product   productResponse `json:"product"`
	CanManage bool            `json:"can_manage"`
}

type updateProductResponse struct {
	Product productResponse              `json:"product"`
	Report  *entity.ReconciliationReport `json:"report"`
	Issues  []form.Issue                 `json:"issues,omitempty"`
}

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	BrandID  *uint  `json:"brand_id,omitempty"`
}

type loginResponse struct {
	User      userResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"` // Seconds.
}

func toBrandResponse(brand *entity.Brand) *brandResponse {
	if brand == nil {
		return nil
	}

	return &brandResponse{ID: brand.ID, Name: brand.Name}
}

func toBrandResponses(brands []*entity.Brand) []*brandResponse {
	out := make([]*brandResponse, 0, len(brands))
	for _, brand := range brands {
		out = append(out, toBrandResponse(brand))
	}

	return out
}

func toReviewResponse(review *entity.Review) reviewResponse {
	return reviewResponse{
		ID:        review.ID,
		ProductID: review.ProductID,
		Writer:    review.Writer,
		Content:   review.Content,
		CreatedAt: review.CreatedAt,
	}
}

func toProductResponse(product *entity.Product) productResponse {
	out := productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		BrandID:     product.BrandID,
		Brand:       toBrandResponse(product.Brand),
		LikeCount:   product.LikeCount,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	for _, variant := range product.Variants {
		out.Variants = append(out.Variants, variantResponse{
			ID:    variant.ID,
			Color: variant.Color,
			Size:  variant.Size,
			Stock: variant.Stock,
		})
	}
	for _, review := range product.Reviews {
		out.Reviews = append(out.Reviews, toReviewResponse(review))
	}

	return out
}

func toProductResponses(products []*entity.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role.String(),
		BrandID:  user.BrandID,
	}
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	ProductHandler *handler.ProductHandler
	ReviewHandler  *handler.ReviewHandler
	AuthHandler    *handler.AuthHandler
	MediaHandler   *handler.MediaHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	productHandler *handler.ProductHandler
	reviewHandler  *handler.ReviewHandler
	authHandler    *handler.AuthHandler
	mediaHandler   *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		productHandler: params.ProductHandler,
		reviewHandler:  params.ReviewHandler,
		authHandler:    params.AuthHandler,
		mediaHandler:   params.MediaHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every route runs Identify; management rules are enforced by the use cases.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	brandsGroup := e.Group("/brands", r.authMiddleware.Identify)
	{
		brandsGroup.GET("", r.catalogHandler.ListBrands)
		brandsGroup.POST("", r.catalogHandler.CreateBrand, r.authMiddleware.Authenticate)
	}

	productsGroup := e.Group("/products", r.authMiddleware.Identify)
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.POST("", r.productHandler.CreateProduct, r.authMiddleware.Authenticate)
		productsGroup.POST("/images", r.mediaHandler.UploadImage, r.authMiddleware.Authenticate)
		productsGroup.GET("/resolve", r.productHandler.ResolveShareLink)

		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.GET("/:id/qr", r.productHandler.ShareQR)

		// HTML forms can only POST, so the edit form posts to the product URL
		productsGroup.POST("/:id", r.productHandler.UpdateProduct, r.authMiddleware.Authenticate)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, r.authMiddleware.Authenticate)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, r.authMiddleware.Authenticate)

		productsGroup.POST("/:id/like", r.productHandler.LikeProduct, r.authMiddleware.Authenticate)
		productsGroup.POST("/:id/reviews", r.reviewHandler.CreateReview, r.authMiddleware.Authenticate)
	}
}

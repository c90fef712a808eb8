package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"go.uber.org/fx"
)

// Module provides the HTTP handlers and middleware.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		middleware.NewAuthMiddleware,
		handler.NewCatalogHandler,
		handler.NewProductHandler,
		handler.NewReviewHandler,
		handler.NewAuthHandler,
		handler.NewMediaHandler,
	),
)

package middleware

import (
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the acting identity of each request from its session token.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   tokenSvc,
		cookieName: cfg.Auth.CookieName,
		logger:     logger,
	}
}

// Identify stores the identity carried by the session cookie or Bearer token. Requests
// without a valid token continue as Anonymous; rejecting them is left to the use cases.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := entity.Identity(entity.Anonymous{})

		if token := m.tokenFrom(c); token != "" {
			claims, err := m.tokenSvc.ValidateToken(token)
			if err == nil {
				identity = claims.Identity()
			} else {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
					Debug("Ignoring invalid session token", slog.Any("error", err))
			}
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// Authenticate rejects anonymous requests. It must be used after Identify.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !entity.IsAuthenticated(deliverycontext.GetIdentity(c)) {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// tokenFrom prefers the Authorization header and falls back to the session cookie.
func (m *AuthMiddleware) tokenFrom(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := c.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}

	return ""
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves account registration and the cookie session.
type AuthHandler struct {
	userUC       usecase.UserUsecase
	cookieName   string
	secureCookie bool
	tokenTTL     time.Duration
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(userUC usecase.UserUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userUC:       userUC,
		cookieName:   cfg.Auth.CookieName,
		secureCookie: cfg.Auth.SecureCookie,
		tokenTTL:     cfg.Auth.TokenTTL,
		logger:       logger,
	}
}

type registerRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role" form:"role" validate:"omitempty,oneof=user seller admin"`
	BrandID  *uint  `json:"brand_id" form:"brand_id"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Register creates an account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		BrandID:  req.BrandID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// Login checks the credentials, sets the httpOnly session cookie and returns the token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, int(h.tokenTTL.Seconds())))

	return response.Success(c, http.StatusOK, loginResponse{
		User:      toUserResponse(output.User),
		Token:     output.Token,
		ExpiresIn: int64(h.tokenTTL.Seconds()),
	})
}

// Logout clears the session cookie. Tokens are stateless, so nothing is revoked server side.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))

	return response.NoContent(c)
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

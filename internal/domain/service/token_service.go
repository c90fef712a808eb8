package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of the session token.
type Claims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	BrandID  *uint  `json:"brandId,omitempty"`
	jwt.RegisteredClaims
}

// Identity rebuilds the acting identity carried by the claims.
func (c *Claims) Identity() entity.Identity {
	user := &entity.User{
		ID:       c.UserID,
		Username: c.Username,
		Role:     entity.ParseRole(c.Role),
		BrandID:  c.BrandID,
	}

	return user.Identity()
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken signs a session token for the user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the configured lifetime of session tokens.
	TokenTTL() time.Duration
}

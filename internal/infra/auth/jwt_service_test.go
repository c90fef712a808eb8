package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: time.Hour},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateSellerToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	brandID := uint(3)
	user := &entity.User{ID: 12, Username: "acme", Role: entity.RoleSeller, BrandID: &brandID}

	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.Equal(t, "acme", claims.Username)
	assert.Equal(t, "seller", claims.Role)
	require.NotNil(t, claims.BrandID)
	assert.Equal(t, uint(3), *claims.BrandID)
	assert.Equal(t, "12", claims.Subject)

	assert.Equal(t, entity.Seller{Principal: entity.Principal{UserID: 12, Username: "acme"}, BrandID: 3}, claims.Identity())
}

func TestJWTService_NonSellerHasNoBrandClaim(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	brandID := uint(3)
	token, err := jwtService.GenerateToken(&entity.User{ID: 1, Username: "root", Role: entity.RoleAdmin, BrandID: &brandID})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.BrandID)
	assert.Equal(t, entity.Admin{Principal: entity.Principal{UserID: 1, Username: "root"}}, claims.Identity())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("first_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("second_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(&entity.User{ID: 1, Username: "alice", Role: entity.RoleUser})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := impl.GenerateToken(&entity.User{ID: 1, Username: "alice", Role: entity.RoleUser})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TokenTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	assert.Equal(t, time.Hour, jwtService.TokenTTL())
}

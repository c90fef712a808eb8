package policy

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brand(id uint) *uint {
	return &id
}

var (
	anonymous      = entity.Anonymous{}
	regularUser    = entity.RegularUser{Principal: entity.Principal{UserID: 1, Username: "alice"}}
	sellerOfBrand3 = entity.Seller{Principal: entity.Principal{UserID: 2, Username: "acme"}, BrandID: 3}
	sellerNoBrand  = entity.Seller{Principal: entity.Principal{UserID: 4, Username: "fresh"}}
	admin          = entity.Admin{Principal: entity.Principal{UserID: 5, Username: "root"}}
)

func TestCanManage(t *testing.T) {
	tests := []struct {
		name     string
		identity entity.Identity
		brandID  *uint
		want     bool
	}{
		{"anonymous", anonymous, brand(3), false},
		{"regular user", regularUser, brand(3), false},
		{"seller own brand", sellerOfBrand3, brand(3), true},
		{"seller other brand", sellerOfBrand3, brand(4), false},
		{"seller on brandless product", sellerOfBrand3, nil, false},
		{"seller without brand", sellerNoBrand, brand(3), false},
		{"admin any brand", admin, brand(42), true},
		{"admin brandless product", admin, nil, true},
		{"nil identity", nil, brand(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanManage(tt.identity, tt.brandID))
		})
	}
}

func TestEffectiveBrandID_SellerIsPinned(t *testing.T) {
	// Whatever the seller submits, the persisted brand is its own.
	for _, submitted := range []*uint{nil, brand(3), brand(99)} {
		got := EffectiveBrandID(sellerOfBrand3, submitted)
		require.NotNil(t, got)
		assert.Equal(t, uint(3), *got)
	}
}

func TestEffectiveBrandID_AdminPassesThrough(t *testing.T) {
	got := EffectiveBrandID(admin, brand(8))
	require.NotNil(t, got)
	assert.Equal(t, uint(8), *got)

	assert.Nil(t, EffectiveBrandID(admin, nil))
}

func TestEffectiveBrandID_DoesNotAliasSubmittedPointer(t *testing.T) {
	submitted := brand(8)
	got := EffectiveBrandID(admin, submitted)
	*submitted = 9

	assert.Equal(t, uint(8), *got)
}

func TestEffectiveBrandID_OthersGetNil(t *testing.T) {
	assert.Nil(t, EffectiveBrandID(anonymous, brand(3)))
	assert.Nil(t, EffectiveBrandID(regularUser, brand(3)))
	assert.Nil(t, EffectiveBrandID(sellerNoBrand, brand(3)))
}

func TestAuthorizeManage(t *testing.T) {
	tests := []struct {
		name     string
		identity entity.Identity
		brandID  *uint
		wantErr  error
	}{
		{"anonymous is unauthenticated", anonymous, brand(3), domainerrors.ErrUnauthenticated},
		{"nil identity is unauthenticated", nil, brand(3), domainerrors.ErrUnauthenticated},
		{"regular user is ownership", regularUser, brand(3), domainerrors.ErrOwnership},
		{"seller without brand", sellerNoBrand, brand(3), domainerrors.ErrMissingBrandAssignment},
		{"seller other brand", sellerOfBrand3, brand(4), domainerrors.ErrOwnership},
		{"seller own brand", sellerOfBrand3, brand(3), nil},
		{"admin", admin, brand(4), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeManage(tt.identity, tt.brandID)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequireBrandAssignment(t *testing.T) {
	assert.ErrorIs(t, RequireBrandAssignment(sellerNoBrand), domainerrors.ErrMissingBrandAssignment)
	assert.NoError(t, RequireBrandAssignment(sellerOfBrand3))
	assert.NoError(t, RequireBrandAssignment(admin))
	assert.NoError(t, RequireBrandAssignment(anonymous))
}

func TestRequireAuthenticated(t *testing.T) {
	principal, err := RequireAuthenticated(regularUser)
	require.NoError(t, err)
	assert.Equal(t, "alice", principal.Username)

	_, err = RequireAuthenticated(anonymous)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

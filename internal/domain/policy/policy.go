// Package policy decides which identities may manage which products.
// Every function is pure and matches the identity variants exhaustively.
package policy

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// CanManage reports whether the identity may edit or delete a product of the given brand.
// A seller only matches its own, assigned brand. A product without a brand is admin-only.
func CanManage(identity entity.Identity, productBrandID *uint) bool {
	switch id := identity.(type) {
	case entity.Admin:
		return true
	case entity.Seller:
		return id.HasBrand() && productBrandID != nil && *productBrandID == id.BrandID
	case entity.RegularUser, entity.Anonymous:
		return false
	default:
		return false
	}
}

// EffectiveBrandID returns the brand a create or update must persist.
// Sellers are pinned to their own brand whatever was submitted. Admins get the
// submitted value verbatim, where nil means "not submitted". Everyone else gets nil.
func EffectiveBrandID(identity entity.Identity, submitted *uint) *uint {
	switch id := identity.(type) {
	case entity.Seller:
		if !id.HasBrand() {
			return nil
		}
		brandID := id.BrandID

		return &brandID
	case entity.Admin:
		if submitted == nil {
			return nil
		}
		brandID := *submitted

		return &brandID
	case entity.RegularUser, entity.Anonymous:
		return nil
	default:
		return nil
	}
}

// RequireBrandAssignment rejects sellers without a brand before any storage access.
func RequireBrandAssignment(identity entity.Identity) error {
	if seller, ok := identity.(entity.Seller); ok && !seller.HasBrand() {
		return domainerrors.ErrMissingBrandAssignment
	}

	return nil
}

// RequireManager rejects identities that can never manage products, independent of any brand.
func RequireManager(identity entity.Identity) error {
	switch identity.(type) {
	case entity.Admin:
		return nil
	case entity.Seller:
		return RequireBrandAssignment(identity)
	case entity.RegularUser:
		return domainerrors.ErrOwnership
	default:
		return domainerrors.ErrUnauthenticated
	}
}

// AuthorizeManage returns the taxonomy error explaining why the identity may not
// manage a product of the given brand, or nil when it may.
func AuthorizeManage(identity entity.Identity, productBrandID *uint) error {
	if err := RequireManager(identity); err != nil {
		return err
	}

	if !CanManage(identity, productBrandID) {
		return domainerrors.ErrOwnership
	}

	return nil
}

// RequireAuthenticated rejects anonymous identities.
func RequireAuthenticated(identity entity.Identity) (entity.Principal, error) {
	principal, ok := entity.PrincipalOf(identity)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthenticated
	}

	return principal, nil
}

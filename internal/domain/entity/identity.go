package entity

// Identity is the acting party of a request. The variant set is closed:
// Anonymous, RegularUser, Seller and Admin.
type Identity interface {
	// Role reports the role of the variant. Anonymous reports an empty role.
	Role() Role
	isIdentity()
}

// Principal is the authenticated part shared by every signed-in variant.
type Principal struct {
	UserID   uint
	Username string
}

// Anonymous is a visitor without credentials.
type Anonymous struct{}

// RegularUser is a signed-in shopper without management rights.
type RegularUser struct {
	Principal
}

// Seller manages the products of exactly one brand. BrandID zero means the
// seller has not been assigned a brand yet.
type Seller struct {
	Principal
	BrandID uint
}

// Admin can manage every product.
type Admin struct {
	Principal
}

func (Anonymous) Role() Role   { return "" }
func (RegularUser) Role() Role { return RoleUser }
func (Seller) Role() Role      { return RoleSeller }
func (Admin) Role() Role       { return RoleAdmin }

func (Anonymous) isIdentity()   {}
func (RegularUser) isIdentity() {}
func (Seller) isIdentity()      {}
func (Admin) isIdentity()       {}

// HasBrand reports whether the seller has a brand assignment.
func (s Seller) HasBrand() bool {
	return s.BrandID != 0
}

// PrincipalOf returns the authenticated principal of an identity.
// The second result is false for Anonymous or a nil identity.
func PrincipalOf(identity Identity) (Principal, bool) {
	switch id := identity.(type) {
	case RegularUser:
		return id.Principal, true
	case Seller:
		return id.Principal, true
	case Admin:
		return id.Principal, true
	default:
		return Principal{}, false
	}
}

// IsAuthenticated reports whether the identity carries a principal.
func IsAuthenticated(identity Identity) bool {
	_, ok := PrincipalOf(identity)

	return ok
}

// RoleOf returns the role of the identity, or an empty role when it is nil.
func RoleOf(identity Identity) Role {
	if identity == nil {
		return ""
	}

	return identity.Role()
}

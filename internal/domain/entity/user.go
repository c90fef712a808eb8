// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can sign in to the storefront.
type User struct {
	ID           uint      // Auto-increment identifier.
	Username     string    // Unique login name, also used as the review writer.
	PasswordHash string    // bcrypt hash of the password.
	Role         Role      // Determines which identity variant the user acts as.
	BrandID      *uint     // Brand assignment, only meaningful for sellers.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Identity builds the acting identity for this account.
func (u *User) Identity() Identity {
	principal := Principal{UserID: u.ID, Username: u.Username}

	switch u.Role {
	case RoleAdmin:
		return Admin{Principal: principal}
	case RoleSeller:
		seller := Seller{Principal: principal}
		if u.BrandID != nil {
			seller.BrandID = *u.BrandID
		}

		return seller
	default:
		return RegularUser{Principal: principal}
	}
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Identity(t *testing.T) {
	brandID := uint(7)

	tests := []struct {
		name string
		user *User
		want Identity
	}{
		{
			name: "admin",
			user: &User{ID: 1, Username: "root", Role: RoleAdmin},
			want: Admin{Principal: Principal{UserID: 1, Username: "root"}},
		},
		{
			name: "seller with brand",
			user: &User{ID: 2, Username: "acme", Role: RoleSeller, BrandID: &brandID},
			want: Seller{Principal: Principal{UserID: 2, Username: "acme"}, BrandID: 7},
		},
		{
			name: "seller without brand",
			user: &User{ID: 3, Username: "newbie", Role: RoleSeller},
			want: Seller{Principal: Principal{UserID: 3, Username: "newbie"}},
		},
		{
			name: "plain user ignores brand",
			user: &User{ID: 4, Username: "alice", Role: RoleUser, BrandID: &brandID},
			want: RegularUser{Principal: Principal{UserID: 4, Username: "alice"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.Identity())
		})
	}
}

func TestPrincipalOf(t *testing.T) {
	principal := Principal{UserID: 9, Username: "bob"}

	got, ok := PrincipalOf(Seller{Principal: principal, BrandID: 1})
	assert.True(t, ok)
	assert.Equal(t, principal, got)

	_, ok = PrincipalOf(Anonymous{})
	assert.False(t, ok)

	_, ok = PrincipalOf(nil)
	assert.False(t, ok)
	assert.False(t, IsAuthenticated(nil))
	assert.True(t, IsAuthenticated(Admin{Principal: principal}))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleSeller, ParseRole("seller"))
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleUser, ParseRole("superuser"))
	assert.Equal(t, RoleUser, ParseRole(""))
}

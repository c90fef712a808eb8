package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `form:"password" validate:"required"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user seller admin"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   loginRequest
		wantMsg string
	}{
		{"valid", loginRequest{Username: "alice", Password: "pw"}, ""},
		{"missing username", loginRequest{Password: "pw"}, "username is required"},
		{"short username", loginRequest{Username: "al", Password: "pw"}, "username must be at least 3"},
		{"missing password uses form name", loginRequest{Username: "alice"}, "password is required"},
		{"unknown role", loginRequest{Username: "alice", Password: "pw", Role: "root"}, "role must be one of: user seller admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

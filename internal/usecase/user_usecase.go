package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput represents the input for creating an account.
type RegisterInput struct {
	Username string
	Password string
	Role     entity.Role
	BrandID  *uint
}

// LoginInput represents the credentials of a sign in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput carries the signed session token.
type LoginOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the account use cases.
type UserUsecase interface {
	// Register creates an account.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login checks credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the username already exists.
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by its ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByUsername retrieves a single user by its login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and fills in its generated ID.
	Create(ctx context.Context, user *entity.User) error
}

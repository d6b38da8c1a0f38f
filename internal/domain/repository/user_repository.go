// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"warden/internal/domain/entity"
)

// Domain-specific errors for account persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when no account matches the given identifier.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when creating an account whose username already exists.
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves a single account by its unique login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new account together with its initial password hash.
	// The hash is stored as an opaque credential and never surfaces on the entity.
	Create(ctx context.Context, user *entity.User, passwordHash []byte) error

	// PasswordHashByUsername retrieves the stored credential for authentication checks.
	PasswordHashByUsername(ctx context.Context, username string) ([]byte, error)
}

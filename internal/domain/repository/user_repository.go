// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"imprisio/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Reads preload the optional printer profile so role resolution is a single
// joined fetch, never a two-step probe.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including the
	// printer profile when one exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, including the
	// printer profile when one exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity, with its printer profile when set.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity, with its printer profile when set.
	Update(ctx context.Context, user *entity.User) error
}

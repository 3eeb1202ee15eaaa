// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"imprisio/internal/domain/entity"
	"imprisio/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found for the owner.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address persistence. Every
// operation is scoped by the owning user id; default-flag maintenance happens
// inside the caller's transaction so the at-most-one-default invariant holds.
type AddressRepository interface {
	// CreateAddress persists a new address for a user.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByUser retrieves all addresses for a user, default first,
	// oldest first among the rest.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID, filtered by the owning user
	// id as defense-in-depth against cross-account deletion.
	DeleteAddress(ctx context.Context, id, userID uuid.UUID) error

	// ClearDefault clears IsDefault on every address of the user except the
	// one identified by keepID (pass uuid.Nil to clear all).
	ClearDefault(ctx context.Context, userID, keepID uuid.UUID) error
}

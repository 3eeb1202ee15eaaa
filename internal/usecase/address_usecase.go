// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"imprisio/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput carries the fields of a delivery address write.
type AddressInput struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
	IsDefault    bool
}

// AddressUsecase defines the interface for delivery address operations. Every
// operation is scoped to the authenticated owner.
type AddressUsecase interface {
	// ListAddresses returns the owner's addresses, default first.
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// AddAddress creates an address. When IsDefault is set, any previous
	// default is cleared in the same transaction.
	AddAddress(ctx context.Context, userID uuid.UUID, input *AddressInput) (*entity.Address, error)

	// UpdateAddress edits an owned address, keeping the single-default invariant.
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *AddressInput) (*entity.Address, error)

	// DeleteAddress removes an owned address.
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
}

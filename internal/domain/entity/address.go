// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address owned by exactly one user.
// At most one address per owner carries IsDefault=true; the persistence layer
// enforces the invariant inside a single transaction when a default is written.
type Address struct {
	ID           uuid.UUID // The unique identifier for the address.
	UserID       uuid.UUID // The ID of the owning user.
	AddressLine1 string    // Street address, first line. Required.
	AddressLine2 string    // Street address, second line. Optional.
	City         string    // City name. Required.
	State        string    // State or province. Optional.
	PostalCode   string    // Postal code. Optional.
	Country      string    // Country name, defaults to "Congo" when omitted.
	IsDefault    bool      // Marks the address pre-selected at checkout.
	CreatedAt    time.Time // Timestamp of when this address was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

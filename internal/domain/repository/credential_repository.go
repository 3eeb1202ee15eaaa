// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"imprisio/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential exists for an email.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the operations for email/password credentials.
type CredentialRepository interface {
	// FindByEmail retrieves the credential record for a login email.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// Create persists a new credential record.
	Create(ctx context.Context, credential *entity.Credential) error
}

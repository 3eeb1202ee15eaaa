// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"imprisio/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for session persistence.
// A stored refresh token hash is one live session; deleting it ends the session.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its stored hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, ending a session.
	// Deleting an unknown hash is not an error.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteExpiredRefreshTokens removes all expired refresh tokens. Logout
	// runs this as an opportunistic sweep.
	DeleteExpiredRefreshTokens(ctx context.Context) error
}

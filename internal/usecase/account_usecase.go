// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"imprisio/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterClientInput defines the data required to register a client account.
type RegisterClientInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// RegisterPrinterInput defines the data required to register a print shop account.
type RegisterPrinterInput struct {
	Email           string
	Password        string
	FirstName       string
	LastName        string
	Phone           string
	BusinessName    string
	BusinessAddress string
	Description     string
	Website         string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the token pair and the role-resolved identity issued by
// register, login and refresh.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AccountUsecase defines the interface for session and registration operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// RegisterClient creates a client account and opens a session.
	RegisterClient(ctx context.Context, input *RegisterClientInput) (*AuthOutput, error)

	// RegisterPrinter creates a user account with a print shop attached and
	// opens a session. The created identity resolves to the printer role.
	RegisterPrinter(ctx context.Context, input *RegisterPrinterInput) (*AuthOutput, error)

	// Login verifies credentials and opens a session.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh exchanges a valid refresh token for a fresh access token. The
	// refresh token itself is left unchanged.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// Logout ends the session behind the given refresh token. Unknown or
	// already-expired tokens still succeed: the session is gone either way.
	Logout(ctx context.Context, refreshToken string) error

	// CurrentUser loads the role-resolved identity for an authenticated user id.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

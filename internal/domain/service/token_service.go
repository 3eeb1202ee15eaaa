package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates only an access token. Used on refresh, where
	// the refresh token stays unchanged.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateAccessToken checks the validity of an access token string.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks the validity of a refresh token string.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the hash under which a refresh token is stored at rest.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}

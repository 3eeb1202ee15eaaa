// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential holds the email/password login record for a user. It lives apart
// from User so the identity row never carries secret material.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	Email        string    // The login email, unique across credentials.
	PasswordHash string    // The bcrypt-hashed password.
	CreatedAt    time.Time // Timestamp of when this credential was created.
}

// RefreshToken represents a long-lived, authorized user session. It is used to
// obtain a new access token after the old one expires, without credentials.
// Only a SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time // When this session was created (i.e. when the user logged in).
}

// Expired reports whether the session is past its expiry at the given instant.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'credentials' table. Password hashes live here,
// apart from the profile data in 'users'.
type CredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. Only the SHA-256 hash
// of a refresh token is stored.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

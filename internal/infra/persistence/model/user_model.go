// Package model contains the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated application-side so
// the same models serve PostgreSQL in production and SQLite in tests.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName string    `gorm:"type:varchar(100)"`
	LastName  string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(50)"`
	AvatarURL string    `gorm:"type:text"`
	Role      string    `gorm:"type:varchar(20);not null;default:client"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Printer *PrinterModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PrinterModel mirrors the 'printers' table. One row per print shop; its
// existence is what makes the owning user a printer.
type PrinterModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Address      string    `gorm:"type:text"`
	Phone        string    `gorm:"type:varchar(50)"`
	Website      string    `gorm:"type:varchar(255)"`
	LogoURL      string    `gorm:"type:text"`
	BannerURL    string    `gorm:"type:text"`
	Rating       float64   `gorm:"not null;default:0"`
	IsVerified   bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrinterModel) TableName() string {
	return "printers"
}

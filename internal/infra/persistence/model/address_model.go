package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel mirrors the 'addresses' table.
type AddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AddressLine1 string    `gorm:"type:varchar(255);not null"`
	AddressLine2 string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(100)"`
	PostalCode   string    `gorm:"type:varchar(20)"`
	Country      string    `gorm:"type:varchar(100);not null;default:Congo"`
	IsDefault    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

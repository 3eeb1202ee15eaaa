package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceModel mirrors the 'services' table, one row per catalog entry a
// printer offers.
type ServiceModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PrinterID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Description   string     `gorm:"type:text"`
	PriceMin      float64    `gorm:"not null;default:0"`
	PriceMax      float64    `gorm:"not null;default:0"`
	EstimatedDays int        `gorm:"not null;default:0"`
	ImageURL      string     `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// CategoryModel mirrors the 'service_categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "service_categories"
}

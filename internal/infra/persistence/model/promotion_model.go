package model

import (
	"time"

	"github.com/google/uuid"
)

// PromotionModel mirrors the 'promotions' table.
type PromotionModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PrinterID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	ServiceID          *uuid.UUID `gorm:"type:uuid"`
	Title              string     `gorm:"type:varchar(255);not null"`
	Description        string     `gorm:"type:text"`
	DiscountPercentage float64    `gorm:"not null;default:0"`
	DiscountAmount     float64    `gorm:"not null;default:0"`
	StartDate          time.Time  `gorm:"not null"`
	EndDate            time.Time  `gorm:"not null"`
	ImageURL           string     `gorm:"type:text"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotions"
}

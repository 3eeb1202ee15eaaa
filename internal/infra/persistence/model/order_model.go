package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Printer and service names are
// denormalized at creation time so order lists survive catalog edits.
type OrderModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber         string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;index"`
	PrinterID           uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceID           uuid.UUID `gorm:"type:uuid;not null"`
	Status              string    `gorm:"type:varchar(20);not null;default:pending"`
	PaymentStatus       string    `gorm:"type:varchar(20);not null;default:unpaid"`
	TotalAmount         float64   `gorm:"not null"`
	DeliveryAddress     string    `gorm:"type:text"`
	SpecialInstructions string    `gorm:"type:text"`
	PrinterName         string    `gorm:"type:varchar(255)"`
	ServiceName         string    `gorm:"type:varchar(255)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

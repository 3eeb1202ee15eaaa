// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tags the stage an order is in. The set is informal: membership is
// validated but no transition graph is enforced, matching the marketplace UI
// which cycles statuses in one fixed order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentStatus tags the payment state of an order. No payment processing
// happens in this system; the tag is informational only.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Order is a print job placed by a client with a specific print shop.
type Order struct {
	ID                  uuid.UUID     // The unique identifier for the order.
	OrderNumber         string        // Human-readable reference, e.g. "ORD-483920XYZ".
	UserID              uuid.UUID     // The ordering client.
	PrinterID           uuid.UUID     // The print shop fulfilling the order.
	ServiceID           uuid.UUID     // The ordered service.
	Status              OrderStatus   // Current fulfilment stage.
	PaymentStatus       PaymentStatus // Informational payment tag.
	TotalAmount         float64       // Agreed total price.
	DeliveryAddress     string        // Free-text delivery address snapshot. Optional.
	SpecialInstructions string        // Free-text instructions for the shop. Optional.
	PrinterName         string        // Denormalized shop name, filled on reads that join printers.
	ServiceName         string        // Denormalized service name, filled on reads that join services.
	CreatedAt           time.Time     // Timestamp of when this order was placed.
	UpdatedAt           time.Time     // Timestamp of the last modification.
}

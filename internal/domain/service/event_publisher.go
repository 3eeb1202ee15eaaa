package service

import (
	"context"
	"time"
)

// Order event names published on the order lifecycle.
const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is the payload published when an order is created or its status
// changes. Publishing is best-effort: failures are logged, never surfaced to
// the request that triggered them.
type OrderEvent struct {
	Event       string    `json:"event"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	UserID      string    `json:"user_id"`
	PrinterID   string    `json:"printer_id"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing order lifecycle events.
type EventPublisher interface {
	// PublishOrderEvent publishes one order event.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases the publisher's resources.
	Close() error
}

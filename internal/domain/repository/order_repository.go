// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"imprisio/internal/domain/entity"
	"imprisio/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found, including when an
// ownership-filtered mutation matches zero rows.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// CreateOrder persists a new order.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its printer and service names joined.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUser retrieves a client's orders, newest first, with printer
	// and service names joined.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindOrdersByPrinter retrieves a print shop's orders, newest first, with
	// printer and service names joined.
	FindOrdersByPrinter(ctx context.Context, printerID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatusByPrinter sets the status of an order owned by the given
	// print shop. The ownership check lives in the mutation's WHERE clause:
	// a non-owner's update matches zero rows and yields ErrOrderNotFound.
	UpdateStatusByPrinter(ctx context.Context, orderID, printerID uuid.UUID, status entity.OrderStatus) error
}

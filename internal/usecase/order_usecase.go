// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"imprisio/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput carries the fields of a new print job.
type PlaceOrderInput struct {
	PrinterID           uuid.UUID
	ServiceID           uuid.UUID
	TotalAmount         float64
	DeliveryAddress     string
	SpecialInstructions string
}

// OrderUsecase defines the interface for order operations. Listing and reads
// are scoped by the caller's resolved role: clients see the orders they
// placed, print shops see the orders placed with them.
type OrderUsecase interface {
	// PlaceOrder creates a pending order for the client and returns it with
	// its generated order number.
	PlaceOrder(ctx context.Context, user *entity.User, input *PlaceOrderInput) (*entity.Order, error)

	// ListOrders returns the caller's orders, newest first, role-scoped.
	ListOrders(ctx context.Context, user *entity.User) ([]*entity.Order, error)

	// GetOrder returns one order if the caller placed it or fulfils it.
	GetOrder(ctx context.Context, user *entity.User, orderID uuid.UUID) (*entity.Order, error)

	// UpdateStatus sets the fulfilment stage of an order owned by the
	// caller's print shop. Non-owners are told the order does not exist.
	UpdateStatus(ctx context.Context, user *entity.User, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// PickupQRCode renders the pickup code PNG for an order the caller may see.
	PickupQRCode(ctx context.Context, user *entity.User, orderID uuid.UUID) ([]byte, error)
}

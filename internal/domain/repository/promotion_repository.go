// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"imprisio/internal/domain/entity"
	"imprisio/internal/errors"

	"github.com/google/uuid"
)

// ErrPromotionNotFound is returned when a promotion is not found.
var ErrPromotionNotFound = errors.New("promotion not found")

// PromotionRepository defines the interface for promotion persistence.
type PromotionRepository interface {
	// CreatePromotion persists a new promotion.
	CreatePromotion(ctx context.Context, promotion *entity.Promotion) error

	// FindPromotionsByPrinter retrieves a print shop's promotions, newest first.
	FindPromotionsByPrinter(ctx context.Context, printerID uuid.UUID) ([]*entity.Promotion, error)

	// DeletePromotion removes a promotion by its ID, filtered by the owning shop.
	DeletePromotion(ctx context.Context, id, printerID uuid.UUID) error
}

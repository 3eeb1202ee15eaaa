// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"imprisio/internal/domain/entity"

	"github.com/google/uuid"
)

// PromotionInput carries the fields of a new promotion. Either a percentage or
// a flat amount must be set, not neither.
type PromotionInput struct {
	Title              string
	Description        string
	DiscountPercentage float64
	DiscountAmount     float64
	StartDate          time.Time
	EndDate            time.Time
	ServiceID          *uuid.UUID
	ImageURL           string
}

// PromotionUsecase defines the interface for print-shop promotions.
type PromotionUsecase interface {
	// ListPromotions returns a shop's promotions for the public shop page.
	ListPromotions(ctx context.Context, printerID uuid.UUID) ([]*entity.Promotion, error)

	// ListOwnPromotions returns the caller's promotions.
	ListOwnPromotions(ctx context.Context, user *entity.User) ([]*entity.Promotion, error)

	// CreatePromotion publishes a promotion for the caller's shop. Required
	// fields are validated before any persistence work.
	CreatePromotion(ctx context.Context, user *entity.User, input *PromotionInput) (*entity.Promotion, error)

	// DeletePromotion removes a promotion owned by the caller's shop.
	DeletePromotion(ctx context.Context, user *entity.User, promotionID uuid.UUID) error
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "imprisio/internal/delivery/context"
	"imprisio/internal/domain/entity"
	domainerrors "imprisio/internal/domain/errors"
	"imprisio/internal/domain/repository"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// promotionService implements the PromotionUsecase interface.
type promotionService struct {
	promotionRepo repository.PromotionRepository
	serviceRepo   repository.ServiceRepository
	logger        *slog.Logger
}

// PromotionServiceParams holds dependencies for promotionService, injected by Fx.
type PromotionServiceParams struct {
	fx.In

	PromotionRepo repository.PromotionRepository
	ServiceRepo   repository.ServiceRepository
	Logger        *slog.Logger
}

// NewPromotionService is the constructor for promotionService.
func NewPromotionService(params PromotionServiceParams) usecase.PromotionUsecase {
	return &promotionService{
		promotionRepo: params.PromotionRepo,
		serviceRepo:   params.ServiceRepo,
		logger:        params.Logger,
	}
}

func (srv *promotionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPromotions returns a shop's promotions for the public shop page.
func (srv *promotionService) ListPromotions(ctx context.Context, printerID uuid.UUID) ([]*entity.Promotion, error) {
	promotions, err := srv.promotionRepo.FindPromotionsByPrinter(ctx, printerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	return promotions, nil
}

// ListOwnPromotions returns the caller's promotions.
func (srv *promotionService) ListOwnPromotions(ctx context.Context, user *entity.User) ([]*entity.Promotion, error) {
	if !user.IsPrinter() {
		return nil, errors.Wrap(domainerrors.ErrPrinterNotFound, "caller has no print shop")
	}

	return srv.ListPromotions(ctx, user.PrinterProfile.ID)
}

// CreatePromotion publishes a promotion for the caller's shop. Required fields
// are validated before any persistence work.
func (srv *promotionService) CreatePromotion(ctx context.Context, user *entity.User, input *usecase.PromotionInput) (*entity.Promotion, error) {
	if !user.IsPrinter() {
		return nil, errors.Wrap(domainerrors.ErrPrinterNotFound, "caller has no print shop")
	}
	if err := validatePromotionInput(input); err != nil {
		return nil, err
	}
	shop := user.PrinterProfile

	if input.ServiceID != nil {
		offering, err := srv.serviceRepo.FindServiceByID(ctx, *input.ServiceID)
		if err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return nil, errors.Wrap(domainerrors.ErrServiceNotFound, "unknown service")
			}

			return nil, errors.Wrap(err, "failed to load promoted service")
		}
		if offering.PrinterID != shop.ID {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "promoted service not owned by this shop")
		}
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}

	promotion := &entity.Promotion{
		PrinterID:          shop.ID,
		ServiceID:          input.ServiceID,
		Title:              input.Title,
		Description:        input.Description,
		DiscountPercentage: input.DiscountPercentage,
		DiscountAmount:     input.DiscountAmount,
		StartDate:          startDate,
		EndDate:            input.EndDate,
		ImageURL:           input.ImageURL,
	}

	if err := srv.promotionRepo.CreatePromotion(ctx, promotion); err != nil {
		return nil, errors.Wrap(err, "failed to create promotion")
	}

	srv.log(ctx).Info("Promotion published",
		slog.String("title", promotion.Title),
		slog.Any("printerID", shop.ID),
	)

	return promotion, nil
}

// DeletePromotion removes a promotion owned by the caller's shop.
func (srv *promotionService) DeletePromotion(ctx context.Context, user *entity.User, promotionID uuid.UUID) error {
	if !user.IsPrinter() {
		return errors.Wrap(domainerrors.ErrPrinterNotFound, "caller has no print shop")
	}

	if err := srv.promotionRepo.DeletePromotion(ctx, promotionID, user.PrinterProfile.ID); err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return errors.Wrap(domainerrors.ErrPromotionNotFound, "promotion not found for this shop")
		}

		return errors.Wrap(err, "failed to delete promotion")
	}

	return nil
}

func validatePromotionInput(input *usecase.PromotionInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "title is required")
	}
	if input.EndDate.IsZero() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "endDate is required")
	}
	if input.DiscountPercentage == 0 && input.DiscountAmount == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "a percentage or a flat amount is required")
	}
	if input.DiscountPercentage < 0 || input.DiscountPercentage > 100 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "percentage must be between 0 and 100")
	}
	if input.DiscountAmount < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "flat amount must not be negative")
	}
	if !input.StartDate.IsZero() && input.EndDate.Before(input.StartDate) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "endDate must not precede startDate")
	}

	return nil
}

package postgres

import (
	"context"

	"imprisio/internal/domain/entity"
	domainerrors "imprisio/internal/domain/errors"
	"imprisio/internal/domain/repository"
	"imprisio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promotionRepository implements the domain.PromotionRepository interface using GORM.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}

// CreatePromotion persists a new promotion.
func (repo *promotionRepository) CreatePromotion(ctx context.Context, promotion *entity.Promotion) error {
	promoM := fromPromotionDomain(promotion)
	if promoM.ID == uuid.Nil {
		promoM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(promoM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required promotion fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promotion")
	}

	promotion.ID = promoM.ID
	promotion.CreatedAt = promoM.CreatedAt

	return nil
}

// FindPromotionsByPrinter retrieves a print shop's promotions, newest first.
func (repo *promotionRepository) FindPromotionsByPrinter(ctx context.Context, printerID uuid.UUID) ([]*entity.Promotion, error) {
	var promoModels []*model.PromotionModel
	if err := repo.db.WithContext(ctx).
		Where("printer_id = ?", printerID).
		Order("created_at DESC").
		Find(&promoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(promoModels))
	for _, promoM := range promoModels {
		promotions = append(promotions, toPromotionDomain(promoM))
	}

	return promotions, nil
}

// DeletePromotion removes a promotion by its ID, filtered by the owning shop.
func (repo *promotionRepository) DeletePromotion(ctx context.Context, id, printerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND printer_id = ?", id, printerID).
		Delete(&model.PromotionModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPromotionDomain(data *model.PromotionModel) *entity.Promotion {
	if data == nil {
		return nil
	}

	return &entity.Promotion{
		ID:                 data.ID,
		PrinterID:          data.PrinterID,
		ServiceID:          data.ServiceID,
		Title:              data.Title,
		Description:        data.Description,
		DiscountPercentage: data.DiscountPercentage,
		DiscountAmount:     data.DiscountAmount,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		ImageURL:           data.ImageURL,
		CreatedAt:          data.CreatedAt,
	}
}

func fromPromotionDomain(data *entity.Promotion) *model.PromotionModel {
	if data == nil {
		return nil
	}

	return &model.PromotionModel{
		ID:                 data.ID,
		PrinterID:          data.PrinterID,
		ServiceID:          data.ServiceID,
		Title:              data.Title,
		Description:        data.Description,
		DiscountPercentage: data.DiscountPercentage,
		DiscountAmount:     data.DiscountAmount,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		ImageURL:           data.ImageURL,
		CreatedAt:          data.CreatedAt,
	}
}

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

// printerRepository implements the domain.PrinterRepository interface using GORM.
type printerRepository struct {
	db *gorm.DB
}

// NewPrinterRepository is the constructor for printerRepository.
func NewPrinterRepository(db *gorm.DB) repository.PrinterRepository {
	return &printerRepository{db: db}
}

// FindPrinterByID retrieves a print shop by its unique ID.
func (repo *printerRepository) FindPrinterByID(ctx context.Context, id uuid.UUID) (*entity.PrinterProfile, error) {
	var printerM model.PrinterModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&printerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrinterNotFound
		}

		return nil, errors.Wrap(err, "failed to find printer by id")
	}

	return toPrinterDomain(&printerM), nil
}

// FindPrinterByUserID retrieves the print shop owned by a user.
func (repo *printerRepository) FindPrinterByUserID(ctx context.Context, userID uuid.UUID) (*entity.PrinterProfile, error) {
	var printerM model.PrinterModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&printerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrinterNotFound
		}

		return nil, errors.Wrap(err, "failed to find printer by user id")
	}

	return toPrinterDomain(&printerM), nil
}

// ListPrinters retrieves all print shops, newest first.
func (repo *printerRepository) ListPrinters(ctx context.Context) ([]*entity.PrinterProfile, error) {
	var printerModels []*model.PrinterModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&printerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list printers")
	}

	printers := make([]*entity.PrinterProfile, 0, len(printerModels))
	for _, printerM := range printerModels {
		printers = append(printers, toPrinterDomain(printerM))
	}

	return printers, nil
}

// UpdatePrinter updates an existing print shop record.
func (repo *printerRepository) UpdatePrinter(ctx context.Context, printer *entity.PrinterProfile) error {
	printerM := fromPrinterDomain(printer)

	result := repo.db.WithContext(ctx).
		Model(&model.PrinterModel{}).
		Where("id = ?", printerM.ID).
		Updates(map[string]any{
			"business_name": printerM.BusinessName,
			"description":   printerM.Description,
			"address":       printerM.Address,
			"phone":         printerM.Phone,
			"website":       printerM.Website,
			"logo_url":      printerM.LogoURL,
			"banner_url":    printerM.BannerURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update printer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPrinterNotFound
	}

	return nil
}

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

// serviceRepository implements the domain.ServiceRepository interface using GORM.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// CreateService persists a new service offering.
func (repo *serviceRepository) CreateService(ctx context.Context, service *entity.PrinterService) error {
	serviceM := fromServiceDomain(service)
	if serviceM.ID == uuid.Nil {
		serviceM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("unknown category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required service fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// FindServiceByID retrieves a service with its category preloaded.
func (repo *serviceRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.PrinterService, error) {
	var serviceM model.ServiceModel
	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by id")
	}

	return toServiceDomain(&serviceM), nil
}

// FindServicesByPrinter retrieves a print shop's services with categories preloaded.
func (repo *serviceRepository) FindServicesByPrinter(ctx context.Context, printerID uuid.UUID) ([]*entity.PrinterService, error) {
	var serviceModels []*model.ServiceModel
	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("printer_id = ?", printerID).
		Order("created_at DESC").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services by printer")
	}

	return toServiceDomains(serviceModels), nil
}

// FindServicesByCategory retrieves every service in a category.
func (repo *serviceRepository) FindServicesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.PrinterService, error) {
	var serviceModels []*model.ServiceModel
	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services by category")
	}

	return toServiceDomains(serviceModels), nil
}

// UpdateService updates a service owned by the given print shop. Zero matched
// rows mean the service does not exist for that owner.
func (repo *serviceRepository) UpdateService(ctx context.Context, service *entity.PrinterService) error {
	serviceM := fromServiceDomain(service)

	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ? AND printer_id = ?", serviceM.ID, serviceM.PrinterID).
		Updates(map[string]any{
			"category_id":    serviceM.CategoryID,
			"name":           serviceM.Name,
			"description":    serviceM.Description,
			"price_min":      serviceM.PriceMin,
			"price_max":      serviceM.PriceMax,
			"estimated_days": serviceM.EstimatedDays,
			"image_url":      serviceM.ImageURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// DeleteService removes a service by its ID, filtered by the owning shop.
func (repo *serviceRepository) DeleteService(ctx context.Context, id, printerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND printer_id = ?", id, printerID).
		Delete(&model.ServiceModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// ListCategories retrieves the global category reference data.
func (repo *serviceRepository) ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.ServiceCategory, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindCategoryByID retrieves a single category.
func (repo *serviceRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.ServiceCategory, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// --- Mapper Functions ---

func toServiceDomain(data *model.ServiceModel) *entity.PrinterService {
	if data == nil {
		return nil
	}

	var categoryID uuid.UUID
	if data.CategoryID != nil {
		categoryID = *data.CategoryID
	}

	var categoryName string
	if data.Category != nil {
		categoryName = data.Category.Name
	}

	return &entity.PrinterService{
		ID:            data.ID,
		PrinterID:     data.PrinterID,
		CategoryID:    categoryID,
		Name:          data.Name,
		Description:   data.Description,
		PriceMin:      data.PriceMin,
		PriceMax:      data.PriceMax,
		EstimatedDays: data.EstimatedDays,
		ImageURL:      data.ImageURL,
		CategoryName:  categoryName,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toServiceDomains(serviceModels []*model.ServiceModel) []*entity.PrinterService {
	services := make([]*entity.PrinterService, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services
}

func fromServiceDomain(data *entity.PrinterService) *model.ServiceModel {
	if data == nil {
		return nil
	}

	var categoryID *uuid.UUID
	if data.CategoryID != uuid.Nil {
		id := data.CategoryID
		categoryID = &id
	}

	return &model.ServiceModel{
		ID:            data.ID,
		PrinterID:     data.PrinterID,
		CategoryID:    categoryID,
		Name:          data.Name,
		Description:   data.Description,
		PriceMin:      data.PriceMin,
		PriceMax:      data.PriceMax,
		EstimatedDays: data.EstimatedDays,
		ImageURL:      data.ImageURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.ServiceCategory {
	if data == nil {
		return nil
	}

	return &entity.ServiceCategory{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
	}
}

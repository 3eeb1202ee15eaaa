// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"imprisio/internal/domain/entity"

	"github.com/google/uuid"
)

// ServiceInput carries the fields of a catalog service write.
type ServiceInput struct {
	CategoryID    uuid.UUID
	Name          string
	Description   string
	PriceMin      float64
	PriceMax      float64
	EstimatedDays int
}

// CatalogUsecase defines the interface for the public catalog and the
// printer-side catalog management.
type CatalogUsecase interface {
	// ListPrinters returns every print shop for the public directory.
	ListPrinters(ctx context.Context) ([]*entity.PrinterProfile, error)

	// GetPrinter returns one print shop with its services.
	GetPrinter(ctx context.Context, printerID uuid.UUID) (*entity.PrinterProfile, []*entity.PrinterService, error)

	// ListCategories returns the global service categories.
	ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error)

	// ListServicesByCategory returns every service in a category.
	ListServicesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.PrinterService, error)

	// ListOwnServices returns the caller's catalog.
	ListOwnServices(ctx context.Context, user *entity.User) ([]*entity.PrinterService, error)

	// AddService creates a catalog entry for the caller's shop.
	AddService(ctx context.Context, user *entity.User, input *ServiceInput) (*entity.PrinterService, error)

	// UpdateService edits a catalog entry owned by the caller's shop.
	UpdateService(ctx context.Context, user *entity.User, serviceID uuid.UUID, input *ServiceInput) (*entity.PrinterService, error)

	// DeleteService removes a catalog entry owned by the caller's shop.
	DeleteService(ctx context.Context, user *entity.User, serviceID uuid.UUID) error

	// UploadServiceImage stores an illustration and writes its public URL
	// onto a catalog entry owned by the caller's shop.
	UploadServiceImage(ctx context.Context, user *entity.User, serviceID uuid.UUID, file *FileInput) (string, error)
}

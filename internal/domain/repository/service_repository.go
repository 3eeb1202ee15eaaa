// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"imprisio/internal/domain/entity"
	"imprisio/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrServiceNotFound is returned when a service is not found, including
	// when an ownership-filtered mutation matches zero rows.
	ErrServiceNotFound = errors.New("service not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// ServiceRepository defines the interface for service and category persistence.
type ServiceRepository interface {
	// CreateService persists a new service offering.
	CreateService(ctx context.Context, service *entity.PrinterService) error

	// FindServiceByID retrieves a service with its category name joined.
	FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.PrinterService, error)

	// FindServicesByPrinter retrieves a print shop's services with category names joined.
	FindServicesByPrinter(ctx context.Context, printerID uuid.UUID) ([]*entity.PrinterService, error)

	// FindServicesByCategory retrieves every service in a category.
	FindServicesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.PrinterService, error)

	// UpdateService updates a service owned by the given print shop. The
	// ownership check lives in the WHERE clause; zero matched rows yield
	// ErrServiceNotFound.
	UpdateService(ctx context.Context, service *entity.PrinterService) error

	// DeleteService removes a service by its ID, filtered by the owning shop.
	DeleteService(ctx context.Context, id, printerID uuid.UUID) error

	// ListCategories retrieves the global category reference data.
	ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error)

	// FindCategoryByID retrieves a single category.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.ServiceCategory, error)
}

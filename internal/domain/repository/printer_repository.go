// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"imprisio/internal/domain/entity"
	"imprisio/internal/errors"

	"github.com/google/uuid"
)

// ErrPrinterNotFound is returned when a print shop is not found.
var ErrPrinterNotFound = errors.New("printer not found")

// PrinterRepository defines the interface for print-shop persistence used by
// the public catalog; the owning user's profile travels with the User entity.
type PrinterRepository interface {
	// FindPrinterByID retrieves a print shop by its unique ID.
	FindPrinterByID(ctx context.Context, id uuid.UUID) (*entity.PrinterProfile, error)

	// FindPrinterByUserID retrieves the print shop owned by a user.
	FindPrinterByUserID(ctx context.Context, userID uuid.UUID) (*entity.PrinterProfile, error)

	// ListPrinters retrieves all print shops, newest first.
	ListPrinters(ctx context.Context) ([]*entity.PrinterProfile, error)

	// UpdatePrinter updates an existing print shop record.
	UpdatePrinter(ctx context.Context, printer *entity.PrinterProfile) error
}

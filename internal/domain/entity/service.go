// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrinterService is one offering of a print shop (flyers, t-shirts, banners...),
// priced as a range and assigned to exactly one category.
type PrinterService struct {
	ID            uuid.UUID // The unique identifier for the service.
	PrinterID     uuid.UUID // The owning print shop.
	CategoryID    uuid.UUID // The category this service belongs to.
	Name          string    // Display name of the service.
	Description   string    // Optional description.
	PriceMin      float64   // Lower bound of the price range.
	PriceMax      float64   // Upper bound of the price range.
	EstimatedDays int       // Estimated production time in days, zero when unknown.
	ImageURL      string    // Public URL of the uploaded illustration, empty when unset.
	CategoryName  string    // Denormalized category name, filled on reads that join categories.
	CreatedAt     time.Time // Timestamp of when this service was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}

// ServiceCategory is global reference data grouping services (business cards,
// apparel, large format...).
type ServiceCategory struct {
	ID          uuid.UUID // The unique identifier for the category.
	Name        string    // Display name of the category.
	Description string    // Optional description.
	ImageURL    string    // Optional illustration URL.
	CreatedAt   time.Time // Timestamp of when this category was created.
}

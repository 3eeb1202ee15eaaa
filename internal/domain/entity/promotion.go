// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Promotion is a time-bounded discount published by a print shop, either as a
// percentage or as a flat amount, optionally scoped to a single service.
type Promotion struct {
	ID                 uuid.UUID  // The unique identifier for the promotion.
	PrinterID          uuid.UUID  // The publishing print shop.
	ServiceID          *uuid.UUID // Optional service the promotion applies to; nil means shop-wide.
	Title              string     // Display title. Required.
	Description        string     // Optional description.
	DiscountPercentage float64    // Percentage discount, zero when DiscountAmount is used.
	DiscountAmount     float64    // Flat discount, zero when DiscountPercentage is used.
	StartDate          time.Time  // First day the promotion applies.
	EndDate            time.Time  // Last day the promotion applies. Required.
	ImageURL           string     // Optional illustration URL.
	CreatedAt          time.Time  // Timestamp of when this promotion was created.
}

// Active reports whether the promotion applies at the given instant.
func (p *Promotion) Active(now time.Time) bool {
	if !p.StartDate.IsZero() && now.Before(p.StartDate) {
		return false
	}

	return !now.After(p.EndDate)
}

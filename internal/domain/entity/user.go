// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. The stored Role field is advisory:
// the effective role is derived by EffectiveRole(), where the presence of a
// PrinterProfile takes precedence over whatever role the row carries.
type User struct {
	ID             uuid.UUID       // The unique identifier for the user account.
	Email          string          // The user's login identifier and contact email.
	FirstName      string          // The user's given name.
	LastName       string          // The user's family name.
	Phone          string          // Optional contact phone number.
	AvatarURL      string          // Public URL of the uploaded avatar, empty when unset.
	Role           Role            // The stored role (client or admin). Printer is never stored, only derived.
	PrinterProfile *PrinterProfile // Nil unless this account owns a print shop.
	CreatedAt      time.Time       // Timestamp of when this account was created.
	UpdatedAt      time.Time       // Timestamp of the last modification.
}

// FullName joins the first and last name for display.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// EffectiveRole resolves the user's role. A printer profile forces RolePrinter
// regardless of the stored role; otherwise the stored role applies, defaulting
// to RoleClient when the stored value is empty or unknown.
func (u *User) EffectiveRole() Role {
	if u.PrinterProfile != nil {
		return RolePrinter
	}
	if u.Role.IsValid() {
		return u.Role
	}

	return RoleClient
}

// IsPrinter reports whether a printer profile exists for this account.
func (u *User) IsPrinter() bool {
	return u.PrinterProfile != nil
}

// PrinterProfile holds the print-shop record owned by a user. It has its own
// identity because orders and services reference the shop, not the user.
type PrinterProfile struct {
	ID           uuid.UUID // The unique identifier for the print shop.
	UserID       uuid.UUID // Foreign key linking the shop to its owning User.
	BusinessName string    // The shop's public display name.
	Description  string    // A description of the shop and its services.
	Address      string    // The physical address of the shop.
	Phone        string    // The shop's contact phone number.
	Website      string    // Optional website URL.
	LogoURL      string    // Public URL of the uploaded logo, empty when unset.
	BannerURL    string    // Public URL of the uploaded banner, empty when unset.
	Rating       float64   // Average customer rating.
	IsVerified   bool      // Whether the shop passed manual verification.
	CreatedAt    time.Time // Timestamp of when this shop was registered.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

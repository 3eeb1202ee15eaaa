// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"imprisio/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the editable identity fields. Nil pointers mean
// "leave unchanged" so partial updates do not clobber other fields.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// UpdateShopInput carries the editable print-shop fields.
type UpdateShopInput struct {
	BusinessName *string
	Description  *string
	Address      *string
	Phone        *string
	Website      *string
}

// FileInput is an uploaded file streamed from the request body.
type FileInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// ProfileUsecase defines the interface for identity and shop profile operations.
type ProfileUsecase interface {
	// GetProfile loads the role-resolved identity.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies partial edits to the identity fields.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// UploadAvatar stores the image and writes its public URL onto the user row.
	UploadAvatar(ctx context.Context, userID uuid.UUID, file *FileInput) (string, error)

	// UpdateShop applies partial edits to the caller's print shop. Callers
	// without a shop get ErrPrinterNotFound.
	UpdateShop(ctx context.Context, userID uuid.UUID, input *UpdateShopInput) (*entity.PrinterProfile, error)

	// UploadShopImage stores a logo or banner ("logo"/"banner") and writes its
	// public URL onto the caller's shop row.
	UploadShopImage(ctx context.Context, userID uuid.UUID, kind string, file *FileInput) (string, error)
}

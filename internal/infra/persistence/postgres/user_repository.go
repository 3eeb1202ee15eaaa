// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID. The printer profile is
// preloaded in the same query so the caller resolves the effective role from
// one read instead of probing the printers table separately.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Preload("Printer").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading the printer profile.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Preload("Printer").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its printer profile when set.
// GORM's Create with associations inserts into users and printers together.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = uuid.New()
	}
	if userM.Printer != nil {
		if userM.Printer.ID == uuid.Nil {
			userM.Printer.ID = uuid.New()
		}
		userM.Printer.UserID = userM.ID
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.PrinterProfile != nil && userM.Printer != nil {
		user.PrinterProfile.ID = userM.Printer.ID
		user.PrinterProfile.UserID = userM.Printer.UserID
		user.PrinterProfile.CreatedAt = userM.Printer.CreatedAt
		user.PrinterProfile.UpdatedAt = userM.Printer.UpdatedAt
	}

	return nil
}

// Update modifies an existing user entity, including its printer profile when set.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		Email:          data.Email,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Phone:          data.Phone,
		AvatarURL:      data.AvatarURL,
		Role:           entity.Role(data.Role),
		PrinterProfile: toPrinterDomain(data.Printer),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if !role.IsValid() {
		role = entity.RoleClient
	}

	return &model.UserModel{
		ID:        data.ID,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Phone:     data.Phone,
		AvatarURL: data.AvatarURL,
		Role:      role.String(),
		Printer:   fromPrinterDomain(data.PrinterProfile),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPrinterDomain(data *model.PrinterModel) *entity.PrinterProfile {
	if data == nil {
		return nil
	}

	return &entity.PrinterProfile{
		ID:           data.ID,
		UserID:       data.UserID,
		BusinessName: data.BusinessName,
		Description:  data.Description,
		Address:      data.Address,
		Phone:        data.Phone,
		Website:      data.Website,
		LogoURL:      data.LogoURL,
		BannerURL:    data.BannerURL,
		Rating:       data.Rating,
		IsVerified:   data.IsVerified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPrinterDomain(data *entity.PrinterProfile) *model.PrinterModel {
	if data == nil {
		return nil
	}

	return &model.PrinterModel{
		ID:           data.ID,
		UserID:       data.UserID,
		BusinessName: data.BusinessName,
		Description:  data.Description,
		Address:      data.Address,
		Phone:        data.Phone,
		Website:      data.Website,
		LogoURL:      data.LogoURL,
		BannerURL:    data.BannerURL,
		Rating:       data.Rating,
		IsVerified:   data.IsVerified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

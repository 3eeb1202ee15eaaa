package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	deliverycontext "imprisio/internal/delivery/context"
	"imprisio/internal/domain/entity"
	domainerrors "imprisio/internal/domain/errors"
	"imprisio/internal/domain/repository"
	"imprisio/internal/domain/service"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo    repository.UserRepository
	printerRepo repository.PrinterRepository
	fileStorage service.FileStorage
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	PrinterRepo repository.PrinterRepository
	FileStorage service.FileStorage
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:    params.UserRepo,
		printerRepo: params.PrinterRepo,
		fileStorage: params.FileStorage,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads the role-resolved identity.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies partial edits to the identity fields.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return user, nil
}

// UploadAvatar stores the image and writes its public URL onto the user row.
func (srv *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, file *usecase.FileInput) (string, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/avatar-%d%s", userID, time.Now().Unix(), fileExtension(file.Filename))
	url, err := srv.fileStorage.Upload(ctx, key, file.ContentType, file.Content)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	user.AvatarURL = url
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to save avatar URL")
	}

	srv.log(ctx).Info("Avatar uploaded", slog.Any("userID", userID), slog.String("key", key))

	return url, nil
}

// UpdateShop applies partial edits to the caller's print shop.
func (srv *profileService) UpdateShop(ctx context.Context, userID uuid.UUID, input *usecase.UpdateShopInput) (*entity.PrinterProfile, error) {
	shop, err := srv.loadOwnShop(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.BusinessName != nil {
		shop.BusinessName = *input.BusinessName
	}
	if input.Description != nil {
		shop.Description = *input.Description
	}
	if input.Address != nil {
		shop.Address = *input.Address
	}
	if input.Phone != nil {
		shop.Phone = *input.Phone
	}
	if input.Website != nil {
		shop.Website = *input.Website
	}

	if err := srv.printerRepo.UpdatePrinter(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to update shop")
	}

	srv.log(ctx).Debug("Shop updated", slog.Any("printerID", shop.ID))

	return shop, nil
}

// UploadShopImage stores a logo or banner and writes its public URL onto the
// caller's shop row.
func (srv *profileService) UploadShopImage(ctx context.Context, userID uuid.UUID, kind string, file *usecase.FileInput) (string, error) {
	if kind != "logo" && kind != "banner" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "image kind must be logo or banner")
	}

	shop, err := srv.loadOwnShop(ctx, userID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s-%d%s", shop.ID, kind, time.Now().Unix(), fileExtension(file.Filename))
	url, err := srv.fileStorage.Upload(ctx, key, file.ContentType, file.Content)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	if kind == "logo" {
		shop.LogoURL = url
	} else {
		shop.BannerURL = url
	}
	if err := srv.printerRepo.UpdatePrinter(ctx, shop); err != nil {
		return "", errors.Wrap(err, "failed to save shop image URL")
	}

	srv.log(ctx).Info("Shop image uploaded", slog.Any("printerID", shop.ID), slog.String("kind", kind))

	return url, nil
}

func (srv *profileService) loadOwnShop(ctx context.Context, userID uuid.UUID) (*entity.PrinterProfile, error) {
	shop, err := srv.printerRepo.FindPrinterByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPrinterNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPrinterNotFound, "no shop for this account")
		}

		return nil, errors.Wrap(err, "failed to load shop")
	}

	return shop, nil
}

// fileExtension normalizes the uploaded filename's extension, defaulting to
// .png when the browser sent none.
func fileExtension(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".png"
	}

	return ext
}

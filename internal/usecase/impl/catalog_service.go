package impl

import (
	"context"
	"fmt"
	"log/slog"
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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	printerRepo repository.PrinterRepository
	serviceRepo repository.ServiceRepository
	fileStorage service.FileStorage
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	PrinterRepo repository.PrinterRepository
	ServiceRepo repository.ServiceRepository
	FileStorage service.FileStorage
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		printerRepo: params.PrinterRepo,
		serviceRepo: params.ServiceRepo,
		fileStorage: params.FileStorage,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPrinters returns every print shop for the public directory.
func (srv *catalogService) ListPrinters(ctx context.Context) ([]*entity.PrinterProfile, error) {
	printers, err := srv.printerRepo.ListPrinters(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list print shops")
	}

	return printers, nil
}

// GetPrinter returns one print shop with its services.
func (srv *catalogService) GetPrinter(ctx context.Context, printerID uuid.UUID) (*entity.PrinterProfile, []*entity.PrinterService, error) {
	shop, err := srv.printerRepo.FindPrinterByID(ctx, printerID)
	if err != nil {
		if errors.Is(err, repository.ErrPrinterNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrPrinterNotFound, "unknown print shop")
		}

		return nil, nil, errors.Wrap(err, "failed to load print shop")
	}

	services, err := srv.serviceRepo.FindServicesByPrinter(ctx, shop.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load shop services")
	}

	return shop, services, nil
}

// ListCategories returns the global service categories.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error) {
	categories, err := srv.serviceRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListServicesByCategory returns every service in a category.
func (srv *catalogService) ListServicesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.PrinterService, error) {
	services, err := srv.serviceRepo.FindServicesByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services by category")
	}

	return services, nil
}

// ListOwnServices returns the caller's catalog.
func (srv *catalogService) ListOwnServices(ctx context.Context, user *entity.User) ([]*entity.PrinterService, error) {
	shop, err := srv.ownShop(user)
	if err != nil {
		return nil, err
	}

	services, err := srv.serviceRepo.FindServicesByPrinter(ctx, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own services")
	}

	return services, nil
}

// AddService creates a catalog entry for the caller's shop.
func (srv *catalogService) AddService(ctx context.Context, user *entity.User, input *usecase.ServiceInput) (*entity.PrinterService, error) {
	shop, err := srv.ownShop(user)
	if err != nil {
		return nil, err
	}
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	if input.CategoryID != uuid.Nil {
		if _, err := srv.serviceRepo.FindCategoryByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "unknown category")
			}

			return nil, errors.Wrap(err, "failed to load category")
		}
	}

	offering := &entity.PrinterService{
		PrinterID:     shop.ID,
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Description:   input.Description,
		PriceMin:      input.PriceMin,
		PriceMax:      input.PriceMax,
		EstimatedDays: input.EstimatedDays,
	}

	if err := srv.serviceRepo.CreateService(ctx, offering); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	srv.log(ctx).Info("Service added to catalog",
		slog.String("name", offering.Name),
		slog.Any("printerID", shop.ID),
	)

	return offering, nil
}

// UpdateService edits a catalog entry owned by the caller's shop.
func (srv *catalogService) UpdateService(ctx context.Context, user *entity.User, serviceID uuid.UUID, input *usecase.ServiceInput) (*entity.PrinterService, error) {
	shop, err := srv.ownShop(user)
	if err != nil {
		return nil, err
	}
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	offering := &entity.PrinterService{
		ID:            serviceID,
		PrinterID:     shop.ID,
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Description:   input.Description,
		PriceMin:      input.PriceMin,
		PriceMax:      input.PriceMax,
		EstimatedDays: input.EstimatedDays,
	}

	if err := srv.serviceRepo.UpdateService(ctx, offering); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrServiceNotFound, "service not found for this shop")
		}

		return nil, errors.Wrap(err, "failed to update service")
	}

	updated, err := srv.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload service after update")
	}

	return updated, nil
}

// DeleteService removes a catalog entry owned by the caller's shop.
func (srv *catalogService) DeleteService(ctx context.Context, user *entity.User, serviceID uuid.UUID) error {
	shop, err := srv.ownShop(user)
	if err != nil {
		return err
	}

	if err := srv.serviceRepo.DeleteService(ctx, serviceID, shop.ID); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return errors.Wrap(domainerrors.ErrServiceNotFound, "service not found for this shop")
		}

		return errors.Wrap(err, "failed to delete service")
	}

	return nil
}

// UploadServiceImage stores an illustration and writes its public URL onto a
// catalog entry owned by the caller's shop.
func (srv *catalogService) UploadServiceImage(ctx context.Context, user *entity.User, serviceID uuid.UUID, file *usecase.FileInput) (string, error) {
	shop, err := srv.ownShop(user)
	if err != nil {
		return "", err
	}

	offering, err := srv.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return "", errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
		}

		return "", errors.Wrap(err, "failed to load service")
	}
	if offering.PrinterID != shop.ID {
		return "", errors.Wrap(domainerrors.ErrServiceNotFound, "service not owned by this shop")
	}

	key := fmt.Sprintf("%s/service-%s-%d%s", shop.ID, offering.ID, time.Now().Unix(), fileExtension(file.Filename))
	url, err := srv.fileStorage.Upload(ctx, key, file.ContentType, file.Content)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	offering.ImageURL = url
	if err := srv.serviceRepo.UpdateService(ctx, offering); err != nil {
		return "", errors.Wrap(err, "failed to save service image url")
	}

	return url, nil
}

// ownShop resolves the caller's print shop from the roles attached at login.
func (srv *catalogService) ownShop(user *entity.User) (*entity.PrinterProfile, error) {
	if !user.IsPrinter() {
		return nil, errors.Wrap(domainerrors.ErrPrinterNotFound, "caller has no print shop")
	}

	return user.PrinterProfile, nil
}

func validateServiceInput(input *usecase.ServiceInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "name is required")
	}
	if input.PriceMin < 0 || input.PriceMax < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "prices must not be negative")
	}
	if input.PriceMax > 0 && input.PriceMax < input.PriceMin {
		return errors.Wrap(domainerrors.ErrValidationFailed, "priceMax must not be below priceMin")
	}

	return nil
}

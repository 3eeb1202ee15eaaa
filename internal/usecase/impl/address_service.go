package impl

import (
	"context"
	"log/slog"

	deliverycontext "imprisio/internal/delivery/context"
	"imprisio/internal/domain/entity"
	domainerrors "imprisio/internal/domain/errors"
	"imprisio/internal/domain/repository"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the owner's addresses, default first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// AddAddress creates an address. A write that sets the default flag clears
// every other default of the owner in the same transaction, so no reader or
// crash can observe two defaults.
func (srv *addressService) AddAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	address := &entity.Address{
		UserID:       userID,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		Country:      input.Country,
		IsDefault:    input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.AddressRepo()

		if err := repo.CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		if address.IsDefault {
			return repo.ClearDefault(ctx, userID, address.ID)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("AddAddress failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return address, nil
}

// UpdateAddress edits an owned address, keeping the single-default invariant.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	address := &entity.Address{
		ID:           addressID,
		UserID:       userID,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		Country:      input.Country,
		IsDefault:    input.IsDefault,
	}
	if address.Country == "" {
		address.Country = "Congo"
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.AddressRepo()

		if address.IsDefault {
			if err := repo.ClearDefault(ctx, userID, addressID); err != nil {
				return err
			}
		}

		if err := repo.UpdateAddress(ctx, address); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found for owner")
			}

			return errors.Wrap(err, "failed to update address")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("UpdateAddress failed", slog.Any("addressID", addressID), slog.Any("error", err))

		return nil, err
	}

	return address, nil
}

// DeleteAddress removes an owned address.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if err := srv.addressRepo.DeleteAddress(ctx, addressID, userID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found for owner")
		}

		return errors.Wrap(err, "failed to delete address")
	}

	srv.log(ctx).Debug("Address deleted", slog.Any("addressID", addressID))

	return nil
}

func validateAddressInput(input *usecase.AddressInput) error {
	if input.AddressLine1 == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "addressLine1 is required")
	}
	if input.City == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "city is required")
	}

	return nil
}

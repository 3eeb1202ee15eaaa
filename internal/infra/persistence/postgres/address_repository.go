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

// addressRepository implements the domain.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address for a user.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addrM := fromAddressDomain(address)
	if addrM.ID == uuid.Nil {
		addrM.ID = uuid.New()
	}
	if addrM.Country == "" {
		addrM.Country = "Congo"
	}

	if err := repo.db.WithContext(ctx).Create(addrM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addrM.ID
	address.Country = addrM.Country
	address.CreatedAt = addrM.CreatedAt
	address.UpdatedAt = addrM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addrM model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addrM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addrM), nil
}

// FindAddressesByUser retrieves all addresses for a user, default first,
// oldest first among the rest.
func (repo *addressRepository) FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addrModels []*model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&addrModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	addresses := make([]*entity.Address, 0, len(addrModels))
	for _, addrM := range addrModels {
		addresses = append(addresses, toAddressDomain(addrM))
	}

	return addresses, nil
}

// UpdateAddress updates an existing address record. The mutation is filtered by
// the owning user id and zero affected rows are reported as not found. Postgres
// and sqlite count matched rows, so a no-change update still passes; drivers
// with changed-rows semantics would need a preceding existence read.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addrM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ? AND user_id = ?", addrM.ID, addrM.UserID).
		Updates(map[string]any{
			"address_line1": addrM.AddressLine1,
			"address_line2": addrM.AddressLine2,
			"city":          addrM.City,
			"state":         addrM.State,
			"postal_code":   addrM.PostalCode,
			"country":       addrM.Country,
			"is_default":    addrM.IsDefault,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddress removes an address by its ID, filtered by the owning user id.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// ClearDefault clears IsDefault on every address of the user except keepID.
// Runs inside the caller's transaction so at most one default survives.
func (repo *addressRepository) ClearDefault(ctx context.Context, userID, keepID uuid.UUID) error {
	query := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ? AND is_default = ?", userID, true)
	if keepID != uuid.Nil {
		query = query.Where("id <> ?", keepID)
	}

	if err := query.Update("is_default", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default addresses")
	}

	return nil
}

// --- Mapper Functions ---

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:           data.ID,
		UserID:       data.UserID,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Country:      data.Country,
		IsDefault:    data.IsDefault,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:           data.ID,
		UserID:       data.UserID,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Country:      data.Country,
		IsDefault:    data.IsDefault,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

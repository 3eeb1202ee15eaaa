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

// credentialRepository implements the domain.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// FindByEmail retrieves the credential record for a login email.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credM model.CredentialModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&credM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by email")
	}

	return toCredentialDomain(&credM), nil
}

// Create persists a new credential record.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credM := fromCredentialDomain(credential)
	if credM.ID == uuid.Nil {
		credM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("credential email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credM.ID
	credential.CreatedAt = credM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ID:           data.ID,
		UserID:       data.UserID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

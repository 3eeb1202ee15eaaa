package postgres

import (
	"context"
	"testing"

	"imprisio/internal/domain/entity"
	"imprisio/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{
		Email:     "marie@example.com",
		FirstName: "Marie",
		LastName:  "Okemba",
		Role:      entity.RoleClient,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)

	found, err := repo.FindByEmail(ctx, "marie@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Marie Okemba", found.FullName())
	assert.Nil(t, found.PrinterProfile)
	assert.Equal(t, entity.RoleClient, found.EffectiveRole())
}

func TestUserRepository_CreateWithPrinterProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{
		Email:     "atelier@example.com",
		FirstName: "Jean",
		Role:      entity.RoleClient,
		PrinterProfile: &entity.PrinterProfile{
			BusinessName: "Atelier Brazz' Print",
			Description:  "Impression numérique et offset",
		},
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotNil(t, user.PrinterProfile)
	assert.NotEqual(t, uuid.Nil, user.PrinterProfile.ID)
	assert.Equal(t, user.ID, user.PrinterProfile.UserID)

	// A single read resolves identity and shop together; the shop's presence
	// is what promotes the role.
	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.PrinterProfile)
	assert.Equal(t, "Atelier Brazz' Print", found.PrinterProfile.BusinessName)
	assert.Equal(t, entity.RolePrinter, found.EffectiveRole())
	assert.True(t, found.IsPrinter())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &entity.User{Email: "dup@example.com", Role: entity.RoleClient}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.User{Email: "dup@example.com", Role: entity.RoleClient}
	err := repo.Create(ctx, second)
	require.Error(t, err)
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Email: "update@example.com", FirstName: "Old", Role: entity.RoleClient}
	require.NoError(t, repo.Create(ctx, user))

	user.FirstName = "New"
	user.Phone = "+242 06 123 45 67"
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", found.FirstName)
	assert.Equal(t, "+242 06 123 45 67", found.Phone)
}

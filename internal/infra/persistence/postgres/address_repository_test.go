package postgres

import (
	"context"
	"testing"

	"imprisio/internal/domain/entity"
	"imprisio/internal/domain/repository"
	"imprisio/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAddress(t *testing.T, db *gorm.DB, userID uuid.UUID, line1 string, isDefault bool) *entity.Address {
	t.Helper()

	addr := &entity.Address{
		UserID:       userID,
		AddressLine1: line1,
		City:         "Brazzaville",
		IsDefault:    isDefault,
	}
	require.NoError(t, NewAddressRepository(db).CreateAddress(context.Background(), addr))

	return addr
}

func countDefaults(t *testing.T, db *gorm.DB, userID uuid.UUID) int {
	t.Helper()

	addrs, err := NewAddressRepository(db).FindAddressesByUser(context.Background(), userID)
	require.NoError(t, err)

	count := 0
	for _, addr := range addrs {
		if addr.IsDefault {
			count++
		}
	}

	return count
}

func TestAddressRepository_CreateDefaultsCountry(t *testing.T) {
	db := setupTestDB(t)
	addr := seedAddress(t, db, uuid.New(), "12 avenue de la Paix", false)

	assert.Equal(t, "Congo", addr.Country)
}

func TestAddressRepository_SetDefaultInTransaction(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	first := seedAddress(t, db, userID, "12 avenue de la Paix", true)
	second := seedAddress(t, db, userID, "45 rue Mbochis", false)

	// Promoting a new default clears the old one and sets the new one in one
	// transaction, so no interleaving can observe two defaults.
	tm := NewTransactionManager(db)
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.AddressRepo().ClearDefault(context.Background(), userID, second.ID); err != nil {
			return err
		}
		second.IsDefault = true

		return f.AddressRepo().UpdateAddress(context.Background(), second)
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countDefaults(t, db, userID))

	addrs, err := NewAddressRepository(db).FindAddressesByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, addrs, 2)
	// Default sorts first.
	assert.Equal(t, second.ID, addrs[0].ID)
	assert.True(t, addrs[0].IsDefault)
	assert.Equal(t, first.ID, addrs[1].ID)
	assert.False(t, addrs[1].IsDefault)
}

func TestAddressRepository_TransactionRollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	userID := uuid.New()
	seedAddress(t, db, userID, "12 avenue de la Paix", true)

	boom := errors.New("boom")
	tm := NewTransactionManager(db)
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.AddressRepo().ClearDefault(context.Background(), userID, uuid.Nil); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	// The clear never committed.
	assert.Equal(t, 1, countDefaults(t, db, userID))
}

func TestAddressRepository_DeleteScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	addr := seedAddress(t, db, owner, "12 avenue de la Paix", false)

	// Another user cannot delete it.
	err := repo.DeleteAddress(ctx, addr.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)

	require.NoError(t, repo.DeleteAddress(ctx, addr.ID, owner))

	_, err = repo.FindAddressByID(ctx, addr.ID)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestAddressRepository_UpdateScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	addr := seedAddress(t, db, uuid.New(), "12 avenue de la Paix", false)

	stolen := *addr
	stolen.UserID = uuid.New()
	stolen.City = "Pointe-Noire"
	err := repo.UpdateAddress(ctx, &stolen)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)

	found, err := repo.FindAddressByID(ctx, addr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brazzaville", found.City)
}

func TestAddressRepository_UpdateWithIdenticalValues(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	addr := seedAddress(t, db, uuid.New(), "12 avenue de la Paix", false)

	// Saving the address unchanged still matches the row and must not be
	// mistaken for a missing address.
	assert.NoError(t, repo.UpdateAddress(ctx, addr))
}

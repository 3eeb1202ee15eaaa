package impl

import (
	"context"
	"testing"

	domainerrors "imprisio/internal/domain/errors"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressInput(line1, city string, isDefault bool) *usecase.AddressInput {
	return &usecase.AddressInput{
		AddressLine1: line1,
		City:         city,
		IsDefault:    isDefault,
	}
}

func TestAddressService_AddAddress(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	owner := env.registerClient(t, "amina@example.cg").User

	created, err := env.addresses.AddAddress(ctx, owner.ID, addressInput("12 rue Mbochis", "Brazzaville", true))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.IsDefault)
	assert.Equal(t, "Congo", created.Country)
}

func TestAddressService_AddAddress_Validation(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	owner := env.registerClient(t, "amina@example.cg").User

	_, err := env.addresses.AddAddress(ctx, owner.ID, addressInput("", "Brazzaville", false))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = env.addresses.AddAddress(ctx, owner.ID, addressInput("12 rue Mbochis", "", false))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAddressService_SingleDefault(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	owner := env.registerClient(t, "amina@example.cg").User

	first, err := env.addresses.AddAddress(ctx, owner.ID, addressInput("12 rue Mbochis", "Brazzaville", true))
	require.NoError(t, err)

	// A second default demotes the first inside the same transaction.
	second, err := env.addresses.AddAddress(ctx, owner.ID, addressInput("5 avenue Foch", "Pointe-Noire", true))
	require.NoError(t, err)

	listed, err := env.addresses.ListAddresses(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	defaults := 0
	for _, address := range listed {
		if address.IsDefault {
			defaults++
			assert.Equal(t, second.ID, address.ID)
		}
	}
	assert.Equal(t, 1, defaults)

	// Promoting the first through an update flips the default back, still
	// leaving exactly one.
	_, err = env.addresses.UpdateAddress(ctx, owner.ID, first.ID, addressInput("12 rue Mbochis", "Brazzaville", true))
	require.NoError(t, err)

	listed, err = env.addresses.ListAddresses(ctx, owner.ID)
	require.NoError(t, err)

	defaults = 0
	for _, address := range listed {
		if address.IsDefault {
			defaults++
			assert.Equal(t, first.ID, address.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestAddressService_ListAddresses_DefaultFirst(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	owner := env.registerClient(t, "amina@example.cg").User

	_, err := env.addresses.AddAddress(ctx, owner.ID, addressInput("1 rue A", "Brazzaville", false))
	require.NoError(t, err)
	preferred, err := env.addresses.AddAddress(ctx, owner.ID, addressInput("2 rue B", "Brazzaville", true))
	require.NoError(t, err)

	listed, err := env.addresses.ListAddresses(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, preferred.ID, listed[0].ID)
}

func TestAddressService_OwnerScoping(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	owner := env.registerClient(t, "amina@example.cg").User
	intruder := env.registerClient(t, "other@example.cg").User

	created, err := env.addresses.AddAddress(ctx, owner.ID, addressInput("12 rue Mbochis", "Brazzaville", false))
	require.NoError(t, err)

	_, err = env.addresses.UpdateAddress(ctx, intruder.ID, created.ID, addressInput("Hijacked", "Nowhere", false))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))

	err = env.addresses.DeleteAddress(ctx, intruder.ID, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))

	// The owner still sees the address untouched.
	listed, err := env.addresses.ListAddresses(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "12 rue Mbochis", listed[0].AddressLine1)
}

func TestAddressService_DeleteAddress(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	owner := env.registerClient(t, "amina@example.cg").User

	created, err := env.addresses.AddAddress(ctx, owner.ID, addressInput("12 rue Mbochis", "Brazzaville", false))
	require.NoError(t, err)

	require.NoError(t, env.addresses.DeleteAddress(ctx, owner.ID, created.ID))

	listed, err := env.addresses.ListAddresses(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

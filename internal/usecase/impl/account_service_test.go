package impl

import (
	"context"
	"testing"
	"time"

	"imprisio/internal/domain/entity"
	domainerrors "imprisio/internal/domain/errors"
	"imprisio/internal/infra/persistence/model"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_RegisterClient(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	out := env.registerClient(t, "amina@example.cg")

	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, entity.RoleClient, out.User.EffectiveRole())
	assert.False(t, out.User.IsPrinter())

	current, err := env.accounts.CurrentUser(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "amina@example.cg", current.Email)
}

func TestAccountService_RegisterPrinter(t *testing.T) {
	env := setupEnv(t)

	out := env.registerPrinter(t, "atelier@example.cg", "Atelier Congo Print")

	require.NotNil(t, out.User.PrinterProfile)
	assert.Equal(t, "Atelier Congo Print", out.User.PrinterProfile.BusinessName)
	assert.Equal(t, entity.RolePrinter, out.User.EffectiveRole())
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	env.registerClient(t, "amina@example.cg")

	_, err := env.accounts.RegisterClient(ctx, &usecase.RegisterClientInput{
		Email:    "amina@example.cg",
		Password: "another-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_Login(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	registered := env.registerClient(t, "amina@example.cg")

	out, err := env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "amina@example.cg",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, out.User.ID)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestAccountService_Login_BadCredentials(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	env.registerClient(t, "amina@example.cg")

	// Wrong password and unknown email must be indistinguishable so the login
	// form cannot be used to probe which emails have accounts.
	_, wrongPassword := env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "amina@example.cg",
		Password: "not-the-password",
	})
	require.Error(t, wrongPassword)
	assert.True(t, errors.Is(wrongPassword, domainerrors.ErrInvalidCredentials))

	_, unknownEmail := env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.cg",
		Password: "secret-password",
	})
	require.Error(t, unknownEmail)
	assert.True(t, errors.Is(unknownEmail, domainerrors.ErrInvalidCredentials))

	assert.NotEmpty(t, domainerrors.ErrInvalidCredentials.Message())
}

func TestAccountService_Refresh(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	session := env.registerClient(t, "amina@example.cg")

	out, err := env.accounts.Refresh(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	// The refresh token is reused, not rotated.
	assert.Equal(t, session.RefreshToken, out.RefreshToken)
	assert.Equal(t, session.User.ID, out.User.ID)
}

func TestAccountService_Refresh_GarbageToken(t *testing.T) {
	env := setupEnv(t)

	_, err := env.accounts.Refresh(context.Background(), "not-a-jwt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAccountService_Logout(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	session := env.registerClient(t, "amina@example.cg")

	require.NoError(t, env.accounts.Logout(ctx, session.RefreshToken))

	// The signature is still valid but the session row is gone.
	_, err := env.accounts.Refresh(ctx, session.RefreshToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))

	// Logging out again is a no-op, not an error.
	require.NoError(t, env.accounts.Logout(ctx, session.RefreshToken))
}

func TestAccountService_Logout_SweepsExpiredSessions(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	session := env.registerClient(t, "amina@example.cg")
	other := env.registerClient(t, "pascal@example.cg")

	// A long-dead session of another user, as left behind by a client that
	// never logged out.
	require.NoError(t, env.db.Create(&model.RefreshTokenModel{
		ID:        uuid.New(),
		UserID:    other.User.ID,
		TokenHash: "stale-session",
		ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)

	require.NoError(t, env.accounts.Logout(ctx, session.RefreshToken))

	var count int64
	require.NoError(t, env.db.Table("refresh_tokens").
		Where("token_hash = ?", "stale-session").
		Count(&count).Error)
	assert.Zero(t, count)

	// The other user's live session survives the sweep.
	fresh, err := env.accounts.Refresh(ctx, other.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	credentialRepo   repository.CredentialRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	CredentialRepo   repository.CredentialRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		credentialRepo:   params.CredentialRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterClient creates a client account and opens a session.
func (srv *accountService) RegisterClient(ctx context.Context, input *usecase.RegisterClientInput) (*usecase.AuthOutput, error) {
	newUser := &entity.User{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Role:      entity.RoleClient,
	}

	return srv.register(ctx, newUser, input.Password)
}

// RegisterPrinter creates a user account with a print shop attached and opens
// a session. The shop row is what promotes the account to the printer role.
func (srv *accountService) RegisterPrinter(ctx context.Context, input *usecase.RegisterPrinterInput) (*usecase.AuthOutput, error) {
	newUser := &entity.User{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Role:      entity.RoleClient,
		PrinterProfile: &entity.PrinterProfile{
			BusinessName: input.BusinessName,
			Address:      input.BusinessAddress,
			Description:  input.Description,
			Website:      input.Website,
			Phone:        input.Phone,
		},
	}

	return srv.register(ctx, newUser, input.Password)
}

// register persists the user and its credential in one transaction, then
// opens a session.
func (srv *accountService) register(ctx context.Context, newUser *entity.User, password string) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration",
		slog.String("email", newUser.Email),
		slog.Bool("printer", newUser.IsPrinter()),
	)

	// Hash outside the transaction: bcrypt is CPU-bound.
	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.CredentialRepo().FindByEmail(ctx, newUser.Email); err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		} else if !errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(err, "failed to check existing credential")
		}

		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		credential := &entity.Credential{
			UserID:       newUser.ID,
			Email:        newUser.Email,
			PasswordHash: hashedPassword,
		}

		return repoFactory.CredentialRepo().Create(ctx, credential)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", newUser.Email), slog.Any("error", err))

		return nil, err
	}

	output, err := srv.openSession(ctx, newUser)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return output, nil
}

// Login verifies credentials and opens a session.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	credential, err := srv.credentialRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", input.Email))

			// Same error as a wrong password: the caller must not learn
			// whether the email exists.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.userRepo.FindByID(ctx, credential.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}

	output, err := srv.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return output, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (srv *accountService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token rejected")
	}

	// The signature alone is not enough: the session row must still exist,
	// otherwise a logged-out token would keep minting access tokens.
	tokenHash := srv.tokenService.HashToken(refreshToken)
	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	// Roles are re-derived on every refresh so a shop created after login is
	// reflected in the next access token.
	roles := entity.Roles{user.EffectiveRole()}
	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Logout ends the session behind the given refresh token. The stored hash is
// removed even when the token no longer validates, so a half-expired session
// cannot linger.
func (srv *accountService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := srv.tokenService.HashToken(refreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	// Opportunistic sweep: expired sessions of any user are dead weight, and
	// logout is a natural moment to clear them. Failures never fail the logout.
	if err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx); err != nil {
		srv.log(ctx).Warn("Failed to sweep expired sessions", slog.Any("error", err))
	}

	srv.log(ctx).Debug("Session closed")

	return nil
}

// CurrentUser loads the role-resolved identity for an authenticated user id.
func (srv *accountService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "current user vanished")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

// openSession issues the token pair and persists the refresh token hash.
func (srv *accountService) openSession(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	roles := entity.Roles{user.EffectiveRole()}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

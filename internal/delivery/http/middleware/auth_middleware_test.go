package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"imprisio/internal/domain/entity"
	"imprisio/internal/domain/service"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenService accepts exactly one token string and returns fixed claims.
type stubTokenService struct {
	validToken string
	claims     *service.Claims
}

func (s *stubTokenService) GenerateTokens(uuid.UUID, []string) (string, string, error) {
	return "", "", nil
}

func (s *stubTokenService) GenerateAccessToken(uuid.UUID, []string) (string, error) {
	return "", nil
}

func (s *stubTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	if tokenString != s.validToken {
		return nil, errors.New("invalid token")
	}

	return s.claims, nil
}

func (s *stubTokenService) ValidateRefreshToken(string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTokenService) HashToken(token string) string { return token }

func (s *stubTokenService) GetRefreshTokenDuration() time.Duration { return time.Hour }

// stubAccounts serves a single user and fails lookups for anyone else.
type stubAccounts struct {
	user *entity.User
}

func (s *stubAccounts) RegisterClient(context.Context, *usecase.RegisterClientInput) (*usecase.AuthOutput, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAccounts) RegisterPrinter(context.Context, *usecase.RegisterPrinterInput) (*usecase.AuthOutput, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAccounts) Login(context.Context, *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAccounts) Refresh(context.Context, string) (*usecase.AuthOutput, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAccounts) Logout(context.Context, string) error { return nil }

func (s *stubAccounts) CurrentUser(_ context.Context, userID uuid.UUID) (*entity.User, error) {
	if s.user == nil || s.user.ID != userID {
		return nil, errors.New("user not found")
	}

	return s.user, nil
}

func setupAuthTest(user *entity.User) (*AuthMiddleware, uuid.UUID) {
	userID := uuid.New()
	if user != nil {
		user.ID = userID
	}

	tokens := &stubTokenService{
		validToken: "valid-access-token",
		claims:     &service.Claims{UserID: userID, Roles: []string{"client"}, Type: "access"},
	}

	return NewAuthMiddleware(tokens, &stubAccounts{user: user}), userID
}

func runRequest(m *AuthMiddleware, authHeader string, handlerCalled *bool) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = m.Authenticate(func(c echo.Context) error {
		*handlerCalled = true

		return c.NoContent(http.StatusOK)
	})(c)

	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	user := &entity.User{Email: "amina@example.cg"}
	m, _ := setupAuthTest(user)

	handlerCalled := false
	rec := runRequest(m, "Bearer valid-access-token", &handlerCalled)

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RejectsBeforeHandler(t *testing.T) {
	t.Parallel()

	m, _ := setupAuthTest(&entity.User{})

	cases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "garbage token", header: "Bearer not-a-real-token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handlerCalled := false
			rec := runRequest(m, tc.header, &handlerCalled)

			assert.False(t, handlerCalled, "handler must not run without a valid session")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_UnknownUser(t *testing.T) {
	t.Parallel()

	// Token validates but the account behind it no longer exists.
	m, _ := setupAuthTest(nil)

	handlerCalled := false
	rec := runRequest(m, "Bearer valid-access-token", &handlerCalled)

	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_CurrentUserAttached(t *testing.T) {
	t.Parallel()

	user := &entity.User{Email: "amina@example.cg"}
	m, userID := setupAuthTest(user)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer valid-access-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.User
	err := m.Authenticate(func(c echo.Context) error {
		seen = CurrentUser(c)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, userID, seen.ID)
	assert.Equal(t, "amina@example.cg", seen.Email)
}

func TestRequirePrinter(t *testing.T) {
	t.Parallel()

	t.Run("client is refused", func(t *testing.T) {
		t.Parallel()

		m, _ := setupAuthTest(&entity.User{Email: "client@example.cg"})

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/my/services", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer valid-access-token")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handlerCalled := false
		_ = m.Authenticate(m.RequirePrinter(func(c echo.Context) error {
			handlerCalled = true

			return c.NoContent(http.StatusOK)
		}))(c)

		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("printer passes", func(t *testing.T) {
		t.Parallel()

		printer := &entity.User{
			Email:          "atelier@example.cg",
			PrinterProfile: &entity.PrinterProfile{ID: uuid.New(), BusinessName: "Atelier Congo Print"},
		}
		m, _ := setupAuthTest(printer)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/my/services", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer valid-access-token")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handlerCalled := false
		_ = m.Authenticate(m.RequirePrinter(func(c echo.Context) error {
			handlerCalled = true

			return c.NoContent(http.StatusOK)
		}))(c)

		assert.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("without authenticate", func(t *testing.T) {
		t.Parallel()

		m, _ := setupAuthTest(&entity.User{})

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/my/services", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handlerCalled := false
		_ = m.RequirePrinter(func(c echo.Context) error {
			handlerCalled = true

			return c.NoContent(http.StatusOK)
		})(c)

		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

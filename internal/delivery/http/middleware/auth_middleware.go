package middleware

import (
	"strings"

	"imprisio/internal/delivery/http/response"
	"imprisio/internal/domain/entity"
	"imprisio/internal/domain/service"
	"imprisio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys under which the authenticated identity is stored for handlers.
const (
	ContextKeyUser  = "currentUser"
	ContextKeyRoles = "roles"
)

// AuthMiddleware validates the access token and resolves the caller's
// identity. The user loaded here carries the joined printer profile, so role
// checks further down never need a second read.
type AuthMiddleware struct {
	tokenService service.TokenService
	accounts     usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService, accounts usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService, accounts: accounts}
}

// Authenticate rejects the request with 401 before the handler runs unless a
// valid Bearer access token is presented.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "SESSION_REQUIRED", "Vous devez être connecté pour effectuer cette action")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "SESSION_REQUIRED", "Le jeton doit être de type Bearer")
		}

		claims, err := m.tokenService.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "SESSION_REQUIRED", "Session invalide ou expirée")
		}

		user, err := m.accounts.CurrentUser(c.Request().Context(), claims.UserID)
		if err != nil {
			return response.Unauthorized(c, "SESSION_REQUIRED", "Session invalide ou expirée")
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequirePrinter rejects callers without a print shop. It must run after
// Authenticate.
func (m *AuthMiddleware) RequirePrinter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(ContextKeyUser).(*entity.User)
		if !ok {
			return response.Unauthorized(c, "SESSION_REQUIRED", "Vous devez être connecté pour effectuer cette action")
		}
		if !user.IsPrinter() {
			return response.Forbidden(c, "FORBIDDEN", "Réservé aux comptes imprimeurs")
		}

		return next(c)
	}
}

// CurrentUser returns the identity attached by Authenticate, or nil.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(ContextKeyUser).(*entity.User)

	return user
}

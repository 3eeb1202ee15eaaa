package handler

import (
	"net/http"

	"imprisio/internal/delivery/http/middleware"
	"imprisio/internal/delivery/http/response"
	"imprisio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for session and registration handlers.
type AccountHandler struct {
	accounts usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accounts usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type registerClientRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone"`
}

type registerPrinterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Phone           string `json:"phone"`
	BusinessName    string `json:"businessName" validate:"required"`
	BusinessAddress string `json:"businessAddress"`
	Description     string `json:"description"`
	Website         string `json:"website"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RegisterClient handles the client registration request.
func (h *AccountHandler) RegisterClient(c echo.Context) error {
	var req registerClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données d'inscription invalides")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accounts.RegisterClient(c.Request().Context(), &usecase.RegisterClientInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthView(output.AccessToken, output.RefreshToken, output.User), "Compte créé")
}

// RegisterPrinter handles the print shop registration request.
func (h *AccountHandler) RegisterPrinter(c echo.Context) error {
	var req registerPrinterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données d'inscription invalides")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accounts.RegisterPrinter(c.Request().Context(), &usecase.RegisterPrinterInput{
		Email:           req.Email,
		Password:        req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		Description:     req.Description,
		Website:         req.Website,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthView(output.AccessToken, output.RefreshToken, output.User), "Compte imprimeur créé")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de connexion invalides")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accounts.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthView(output.AccessToken, output.RefreshToken, output.User), "Connexion réussie")
}

// Refresh exchanges a refresh token for a fresh access token.
func (h *AccountHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Jeton de rafraîchissement manquant")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accounts.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthView(output.AccessToken, output.RefreshToken, output.User), "Session rafraîchie")
}

// Logout ends the session behind the given refresh token.
func (h *AccountHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Jeton de rafraîchissement manquant")
	}

	if err := h.accounts.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Déconnexion réussie")
}

// Me returns the authenticated caller's identity.
func (h *AccountHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "SESSION_REQUIRED", "Vous devez être connecté pour effectuer cette action")
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

package handler

import (
	"net/http"

	"imprisio/internal/delivery/http/middleware"
	"imprisio/internal/delivery/http/response"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for delivery address handlers.
type AddressHandler struct {
	addresses usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(addresses usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

type addressRequest struct {
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	IsDefault    bool   `json:"isDefault"`
}

func (req *addressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		IsDefault:    req.IsDefault,
	}
}

// List returns the caller's addresses, default first.
func (h *AddressHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)

	addresses, err := h.addresses.ListAddresses(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressViews(addresses), "")
}

// Create adds an address for the caller.
func (h *AddressHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Adresse invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	created, err := h.addresses.AddAddress(c.Request().Context(), user.ID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressView(created), "Adresse ajoutée")
}

// Update edits one of the caller's addresses.
func (h *AddressHandler) Update(c echo.Context) error {
	user := middleware.CurrentUser(c)

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant d'adresse invalide")
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Adresse invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.addresses.UpdateAddress(c.Request().Context(), user.ID, addressID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressView(updated), "Adresse mise à jour")
}

// Delete removes one of the caller's addresses.
func (h *AddressHandler) Delete(c echo.Context) error {
	user := middleware.CurrentUser(c)

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant d'adresse invalide")
	}

	if err := h.addresses.DeleteAddress(c.Request().Context(), user.ID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Adresse supprimée")
}

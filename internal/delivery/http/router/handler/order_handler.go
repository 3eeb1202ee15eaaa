package handler

import (
	"net/http"

	"imprisio/internal/delivery/http/middleware"
	"imprisio/internal/delivery/http/response"
	"imprisio/internal/domain/entity"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	orders usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orders usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type placeOrderRequest struct {
	PrinterID           uuid.UUID `json:"printerId" validate:"required"`
	ServiceID           uuid.UUID `json:"serviceId" validate:"required"`
	TotalAmount         float64   `json:"totalAmount" validate:"required,gt=0"`
	DeliveryAddress     string    `json:"deliveryAddress"`
	SpecialInstructions string    `json:"specialInstructions"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Place creates a new order for the caller.
func (h *OrderHandler) Place(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Commande invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.orders.PlaceOrder(c.Request().Context(), user, &usecase.PlaceOrderInput{
		PrinterID:           req.PrinterID,
		ServiceID:           req.ServiceID,
		TotalAmount:         req.TotalAmount,
		DeliveryAddress:     req.DeliveryAddress,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Commande créée")
}

// List returns the caller's orders, role-scoped.
func (h *OrderHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)

	orders, err := h.orders.ListOrders(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "")
}

// Get returns one order visible to the caller.
func (h *OrderHandler) Get(c echo.Context) error {
	user := middleware.CurrentUser(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant de commande invalide")
	}

	order, err := h.orders.GetOrder(c.Request().Context(), user, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "")
}

// UpdateStatus moves an order to a new fulfilment stage.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	user := middleware.CurrentUser(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant de commande invalide")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Statut invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.orders.UpdateStatus(c.Request().Context(), user, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Statut mis à jour")
}

// PickupQRCode streams the pickup code PNG for an order the caller may see.
func (h *OrderHandler) PickupQRCode(c echo.Context) error {
	user := middleware.CurrentUser(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant de commande invalide")
	}

	png, err := h.orders.PickupQRCode(c.Request().Context(), user, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

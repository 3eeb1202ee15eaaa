package handler

import (
	"net/http"
	"time"

	"imprisio/internal/delivery/http/middleware"
	"imprisio/internal/delivery/http/response"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PromotionHandler holds dependencies for promotion handlers.
type PromotionHandler struct {
	promotions usecase.PromotionUsecase
}

// NewPromotionHandler is the constructor for PromotionHandler, injected by Fx.
func NewPromotionHandler(promotions usecase.PromotionUsecase) *PromotionHandler {
	return &PromotionHandler{promotions: promotions}
}

type promotionRequest struct {
	Title              string     `json:"title" validate:"required"`
	Description        string     `json:"description"`
	DiscountPercentage float64    `json:"discountPercentage"`
	DiscountAmount     float64    `json:"discountAmount"`
	StartDate          time.Time  `json:"startDate"`
	EndDate            time.Time  `json:"endDate" validate:"required"`
	ServiceID          *uuid.UUID `json:"serviceId"`
	ImageURL           string     `json:"imageUrl"`
}

// ListByPrinter returns a shop's promotions for the public shop page.
func (h *PromotionHandler) ListByPrinter(c echo.Context) error {
	printerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant d'imprimeur invalide")
	}

	promotions, err := h.promotions.ListPromotions(c.Request().Context(), printerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPromotionViews(promotions), "")
}

// ListOwn returns the caller's promotions.
func (h *PromotionHandler) ListOwn(c echo.Context) error {
	user := middleware.CurrentUser(c)

	promotions, err := h.promotions.ListOwnPromotions(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPromotionViews(promotions), "")
}

// Create publishes a promotion for the caller's shop.
func (h *PromotionHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req promotionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Promotion invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	created, err := h.promotions.CreatePromotion(c.Request().Context(), user, &usecase.PromotionInput{
		Title:              req.Title,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		DiscountAmount:     req.DiscountAmount,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		ServiceID:          req.ServiceID,
		ImageURL:           req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPromotionView(created), "Promotion publiée")
}

// Delete removes a promotion owned by the caller's shop.
func (h *PromotionHandler) Delete(c echo.Context) error {
	user := middleware.CurrentUser(c)

	promotionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant de promotion invalide")
	}

	if err := h.promotions.DeletePromotion(c.Request().Context(), user, promotionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Promotion supprimée")
}

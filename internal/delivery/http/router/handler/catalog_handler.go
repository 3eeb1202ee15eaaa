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

// CatalogHandler holds dependencies for the public catalog and the
// printer-side catalog management handlers.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type serviceRequest struct {
	CategoryID    uuid.UUID `json:"categoryId"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description"`
	PriceMin      float64   `json:"priceMin"`
	PriceMax      float64   `json:"priceMax"`
	EstimatedDays int       `json:"estimatedDays"`
}

func (req *serviceRequest) toInput() *usecase.ServiceInput {
	return &usecase.ServiceInput{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		PriceMin:      req.PriceMin,
		PriceMax:      req.PriceMax,
		EstimatedDays: req.EstimatedDays,
	}
}

// ListPrinters returns every print shop for the public directory.
func (h *CatalogHandler) ListPrinters(c echo.Context) error {
	printers, err := h.catalog.ListPrinters(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]shopView, 0, len(printers))
	for _, printer := range printers {
		views = append(views, toShopView(printer))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetPrinter returns one print shop with its services.
func (h *CatalogHandler) GetPrinter(c echo.Context) error {
	printerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant d'imprimeur invalide")
	}

	shop, services, err := h.catalog.GetPrinter(c.Request().Context(), printerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"printer":  toShopView(shop),
		"services": toServiceViews(services),
	}, "")
}

// ListCategories returns the global service categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryViews(categories), "")
}

// ListServicesByCategory returns every service in a category.
func (h *CatalogHandler) ListServicesByCategory(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant de catégorie invalide")
	}

	services, err := h.catalog.ListServicesByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toServiceViews(services), "")
}

// ListOwnServices returns the caller's catalog.
func (h *CatalogHandler) ListOwnServices(c echo.Context) error {
	user := middleware.CurrentUser(c)

	services, err := h.catalog.ListOwnServices(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toServiceViews(services), "")
}

// AddService creates a catalog entry for the caller's shop.
func (h *CatalogHandler) AddService(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Service invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	created, err := h.catalog.AddService(c.Request().Context(), user, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toServiceView(created), "Service ajouté")
}

// UpdateService edits a catalog entry owned by the caller's shop.
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	user := middleware.CurrentUser(c)

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant de service invalide")
	}

	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Service invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.catalog.UpdateService(c.Request().Context(), user, serviceID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toServiceView(updated), "Service mis à jour")
}

// DeleteService removes a catalog entry owned by the caller's shop.
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	user := middleware.CurrentUser(c)

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant de service invalide")
	}

	if err := h.catalog.DeleteService(c.Request().Context(), user, serviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service supprimé")
}

// UploadServiceImage stores an illustration for a catalog entry.
func (h *CatalogHandler) UploadServiceImage(c echo.Context) error {
	user := middleware.CurrentUser(c)

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Identifiant de service invalide")
	}

	file, err := formFile(c, "file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Fichier manquant")
	}
	defer file.close()

	url, err := h.catalog.UploadServiceImage(c.Request().Context(), user, serviceID, file.input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Image mise à jour")
}

package handler

import (
	"net/http"

	"imprisio/internal/delivery/http/middleware"
	"imprisio/internal/delivery/http/response"
	"imprisio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for identity and shop profile handlers.
type ProfileHandler struct {
	profiles usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profiles usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
}

type updateShopRequest struct {
	BusinessName *string `json:"businessName"`
	Description  *string `json:"description"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Website      *string `json:"website"`
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)

	profile, err := h.profiles.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(profile), "")
}

// UpdateProfile applies partial edits to the caller's identity fields.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de profil invalides")
	}

	updated, err := h.profiles.UpdateProfile(c.Request().Context(), user.ID, &usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(updated), "Profil mis à jour")
}

// UploadAvatar stores an avatar image for the caller.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	user := middleware.CurrentUser(c)

	file, err := formFile(c, "file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Fichier manquant")
	}
	defer file.close()

	url, err := h.profiles.UploadAvatar(c.Request().Context(), user.ID, file.input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Avatar mis à jour")
}

// UpdateShop applies partial edits to the caller's print shop.
func (h *ProfileHandler) UpdateShop(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req updateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de boutique invalides")
	}

	shop, err := h.profiles.UpdateShop(c.Request().Context(), user.ID, &usecase.UpdateShopInput{
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Address:      req.Address,
		Phone:        req.Phone,
		Website:      req.Website,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShopView(shop), "Boutique mise à jour")
}

// UploadShopImage stores a logo or banner for the caller's shop. The kind path
// parameter is "logo" or "banner".
func (h *ProfileHandler) UploadShopImage(c echo.Context) error {
	user := middleware.CurrentUser(c)
	kind := c.Param("kind")

	file, err := formFile(c, "file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Fichier manquant")
	}
	defer file.close()

	url, err := h.profiles.UploadShopImage(c.Request().Context(), user.ID, kind, file.input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Image mise à jour")
}

// uploadedFile pairs the usecase file input with the multipart stream to close.
type uploadedFile struct {
	input *usecase.FileInput
	close func()
}

// formFile opens the named multipart file from the request.
func formFile(c echo.Context, name string) (*uploadedFile, error) {
	header, err := c.FormFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "missing multipart file")
	}

	src, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open multipart file")
	}

	return &uploadedFile{
		input: &usecase.FileInput{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     src,
		},
		close: func() { _ = src.Close() },
	}, nil
}

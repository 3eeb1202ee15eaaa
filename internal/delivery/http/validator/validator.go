// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "imprisio/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator installed on the echo server.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks struct tags and maps failures onto the application's
// validation error so the error middleware renders them as a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

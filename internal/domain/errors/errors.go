// Package errors defines the application error hierarchy. Every error carries
// an HTTP status, a stable business code, and the user-facing French message
// the frontend surfaces as a toast.
package errors

import (
	"net/http"

	"imprisio/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
var (
	// Account-related errors.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Utilisateur introuvable",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Cette adresse e-mail est déjà utilisée",
		"",
	)

	ErrPrinterAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PRINTER_ALREADY_EXISTS",
		"Un compte imprimeur existe déjà pour cet utilisateur",
		"",
	)

	ErrPrinterNotFound = NewBaseError(
		http.StatusNotFound,
		"PRINTER_NOT_FOUND",
		"Imprimeur introuvable",
		"",
	)

	// Authentication-related errors.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email ou mot de passe incorrect",
		"",
	)

	ErrSessionRequired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_REQUIRED",
		"Vous devez être connecté pour effectuer cette action",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Session invalide ou expirée",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erreur lors du traitement du mot de passe",
		"",
	)

	// Resource errors.
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Adresse introuvable",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Commande introuvable",
		"",
	)

	ErrServiceNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVICE_NOT_FOUND",
		"Service introuvable",
		"",
	)

	ErrPromotionNotFound = NewBaseError(
		http.StatusNotFound,
		"PROMOTION_NOT_FOUND",
		"Promotion introuvable",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Catégorie introuvable",
		"",
	)

	// Generic errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Certains champs obligatoires sont manquants ou invalides",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Vous n'êtes pas autorisé à effectuer cette action",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Ressource introuvable",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflit de ressources",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"Impossible de télécharger le fichier",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Une erreur s'est produite, veuillez réessayer"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

package services

import (
	"fmt"

	"github.com/praxisworks/supervisor/pkg/models"
)

// Common service errors. Built on KindError so handlers can map them to
// wire codes without matching strings.
var (
	ErrInstanceNotFound = models.NewKindError(models.KindNotFound, "instance not found")
	ErrInstanceClosed   = models.NewKindError(models.KindConflict, "instance is closed")
	ErrSecretNotFound   = models.NewKindError(models.KindNotFound, "secret not found")
	ErrSecretExpired    = models.NewKindError(models.KindNotFound, "secret expired")

	errValidation = models.NewKindError(models.KindValidation, "invalid request")
)

// ValidationError represents a request validation failure for a named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return errValidation
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

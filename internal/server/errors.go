// Package server provides the HTTP API for exporting resumes.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a staged download that does not exist or was released
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("download not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		validation   *ErrValidation
		notFound     *ErrNotFound
		resumeErr    *types.ValidationError
		schemaErr    *schemas.ValidationError
		precondition *export.PreconditionError
		denial       *export.PlatformDenialError
		packaging    *export.PackagingError
	)
	switch {
	case errors.Is(err, templates.ErrUnknownTemplate), errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &resumeErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &denial):
		return http.StatusServiceUnavailable
	case errors.As(err, &precondition):
		return http.StatusBadRequest
	case errors.As(err, &packaging):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

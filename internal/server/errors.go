// Package server provides the HTTP REST API for the transfer scout.
package server

import (
	"errors"
	"net/http"

	"github.com/sportify/transfer-scout/internal/engine"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Field + " - " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var invalidNeed *engine.InvalidNeedProfileError
	var notFound *engine.NeedProfileNotFoundError
	var validation *ErrValidation

	switch {
	case errors.As(err, &invalidNeed):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package http

import (
	"errors"
	"net/http"

	"smartfactory-assistant/internal/intent"
	pkgErrors "smartfactory-assistant/pkg/errors"
)

var errInvalidRequest = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intent.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, intent.ErrInputTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, intent.ErrActionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, intent.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, intent.ErrNoPayload):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

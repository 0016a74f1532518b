package http

import (
	"errors"
	"net/http"

	"smartfactory-assistant/internal/reasoning"
)

// statusFor maps use-case errors to a status. Model failures surface as 502 so
// callers treat them as an unavailable dependency.
func statusFor(err error) int {
	switch {
	case errors.Is(err, reasoning.ErrEmptyInput),
		errors.Is(err, reasoning.ErrInputTooLong),
		errors.Is(err, reasoning.ErrNoIntentID):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"smartfactory-assistant/pkg/openaicompat"
)

var (
	// ErrAllProvidersFailed is returned when no provider produced a response.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured is returned when no provider is enabled.
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest is returned for a nil or empty request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout marks a call cut by a deadline.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited marks a vendor 429. The manager moves on without retrying.
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError ties an error to the provider that returned it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// wrapError tags timeouts and vendor rate limits before attaching the provider name.
func wrapError(provider string, err error) error {
	var apiErr *openaicompat.APIError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		err = fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests:
		err = fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	}
	return &ProviderError{Provider: provider, Err: err}
}

package semantic

import "errors"

var (
	ErrReasonerUnavailable = errors.New("reasoner unavailable")
	ErrMalformedResponse   = errors.New("malformed reasoner response")
)

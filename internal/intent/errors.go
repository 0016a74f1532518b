package intent

import "errors"

var (
	ErrActionNotFound = errors.New("action not found")
	ErrForbidden      = errors.New("action not permitted for this role")
	ErrInputTooLong   = errors.New("input too long")
	ErrNoPayload      = errors.New("action does not take a payload")
	ErrEmptyInput     = errors.New("input is empty")
)

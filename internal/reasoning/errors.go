package reasoning

import "errors"

var (
	ErrEmptyInput   = errors.New("input is empty")
	ErrInputTooLong = errors.New("input too long")
	ErrNoIntentID   = errors.New("intentId is required")
)

package registry

import "errors"

var (
	ErrMissingID         = errors.New("action id is required")
	ErrDuplicateID       = errors.New("duplicate action id")
	ErrNoTriggers        = errors.New("action needs keywords, shortcuts or a pattern")
	ErrEmptyKeyword      = errors.New("empty keyword")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownPermission = errors.New("unknown permission tag")
	ErrBadPattern        = errors.New("malformed structural pattern")
	ErrBadLeadIn         = errors.New("malformed payload lead-in")
	ErrNoLeadIns         = errors.New("payload needs at least one lead-in")
)

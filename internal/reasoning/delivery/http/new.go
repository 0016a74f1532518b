package http

import (
	"smartfactory-assistant/internal/reasoning"
	"smartfactory-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc reasoning.UseCase
}

// New creates the HTTP handler serving the reasoning routes.
func New(l log.Logger, uc reasoning.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

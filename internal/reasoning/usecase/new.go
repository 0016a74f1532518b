package usecase

import (
	"smartfactory-assistant/internal/intent/semantic"
	"smartfactory-assistant/internal/reasoning"
	"smartfactory-assistant/pkg/log"
)

type implUseCase struct {
	l           log.Logger
	reasoner    semantic.Reasoner
	maxInputLen int
}

var _ reasoning.UseCase = (*implUseCase)(nil)

// New creates the reasoning use case on top of an in-process reasoner.
func New(l log.Logger, reasoner semantic.Reasoner, maxInputLen int) *implUseCase {
	return &implUseCase{
		l:           l,
		reasoner:    reasoner,
		maxInputLen: maxInputLen,
	}
}

package usecase

import (
	"smartfactory-assistant/internal/intent"
	pkgLog "smartfactory-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	cfg      Config
	cat      Catalogue
	keywords KeywordResolver
	slots    SlotExtractor
	semantic SemanticMatcher
	payloads PayloadExtractor
}

var _ intent.UseCase = (*implUseCase)(nil)

// New creates a new intent UseCase instance. semantic may be nil when the fallback is disabled.
func New(
	l pkgLog.Logger,
	cfg Config,
	cat Catalogue,
	keywords KeywordResolver,
	slots SlotExtractor,
	semantic SemanticMatcher,
	payloads PayloadExtractor,
) *implUseCase {
	if semantic == nil {
		cfg.SemanticEnabled = false
	}
	return &implUseCase{
		l:        l,
		cfg:      cfg,
		cat:      cat,
		keywords: keywords,
		slots:    slots,
		semantic: semantic,
		payloads: payloads,
	}
}

package reasoning

import (
	"context"

	"smartfactory-assistant/internal/intent/semantic"
)

//go:generate mockery --name UseCase
type UseCase interface {
	MatchIntent(ctx context.Context, req semantic.MatchRequest) (semantic.Verdict, error)
	ExtractContent(ctx context.Context, req semantic.ExtractRequest) (semantic.ExtractedContent, error)
}

package semantic

import "context"

// Reasoner is the language-model reasoning service.
type Reasoner interface {
	MatchIntent(ctx context.Context, req MatchRequest) (Verdict, error)
	ExtractContent(ctx context.Context, req ExtractRequest) (ExtractedContent, error)
}

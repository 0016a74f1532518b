package intent

import (
	"context"

	"smartfactory-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Resolve runs the keyword resolver only. It never touches the network.
	Resolve(ctx context.Context, sc model.Scope, text string) (*Resolved, error)
	// ResolveHybrid adds the semantic fallback when local confidence is low.
	ResolveHybrid(ctx context.Context, sc model.Scope, text string) (*Resolved, error)
	ExtractPayload(ctx context.Context, sc model.Scope, input ExtractPayloadInput) (Payload, error)
	ListActions(ctx context.Context, sc model.Scope) ([]Action, error)
	Suggest(ctx context.Context, sc model.Scope, input SuggestInput) ([]Suggestion, error)
	CacheStats(ctx context.Context) CacheStats
	ClearCache(ctx context.Context)
}

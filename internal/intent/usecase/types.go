package usecase

import (
	"context"
	"time"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/intent/semantic"
	"smartfactory-assistant/internal/model"
)

// Catalogue is the read side of the action registry.
type Catalogue interface {
	Get(id string) (intent.Action, bool)
	Permitted(role string) []intent.Action
}

// KeywordResolver scores input against the catalogue locally.
type KeywordResolver interface {
	Resolve(input string, sc model.Scope) (intent.Candidate, bool)
}

// SlotExtractor pulls parameters for a chosen action.
type SlotExtractor interface {
	Extract(input string, a intent.Action) intent.Params
}

// SemanticMatcher is the cached reasoning fallback.
type SemanticMatcher interface {
	Match(ctx context.Context, input string, sc model.Scope) (semantic.Verdict, error)
	Stats() (int, time.Duration)
	Clear()
}

// PayloadExtractor separates free text from the command phrase.
type PayloadExtractor interface {
	Extract(ctx context.Context, input string, a intent.Action) (intent.Payload, error)
	Len() int
	Clear()
}

// Config holds the hybrid decision thresholds.
type Config struct {
	// HighConfidence returns the keyword result without any fallback.
	HighConfidence float64
	// FallbackBelow triggers the fallback for non-fuzzy keyword results.
	FallbackBelow float64
	// UsabilityFloor marks results below it as needing clarification.
	UsabilityFloor  float64
	MinInputLen     int
	MaxInputLen     int
	SemanticEnabled bool
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		HighConfidence:  0.85,
		FallbackBelow:   0.7,
		UsabilityFloor:  0.5,
		MinInputLen:     3,
		MaxInputLen:     300,
		SemanticEnabled: true,
	}
}

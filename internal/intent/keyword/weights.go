package keyword

import (
	"math"

	"smartfactory-assistant/internal/intent"
)

// Weights are the coefficients of the keyword confidence formula.
type Weights struct {
	Base             float64 // starting score for any keyword hit
	KeywordRatio     float64 // times keyword length / input length
	Score            float64 // times the raw fuzzy match score
	Position         float64 // input starts with the keyword
	LengthDivisor    float64 // keyword length / LengthDivisor, capped at LengthCap
	LengthCap        float64
	CategoryBonus    float64 // action verb present and action is not passive
	VerbKeywordBonus float64 // the keyword itself contains an action verb

	ShortKeywordMaxLen    int
	ShortIsolatedPenalty  float64 // short keyword is not a whole word of the input
	ShortLongInputPenalty float64 // short whole-word keyword inside a long input
	LongInputLen          int

	Min float64
	Max float64

	MethodMultipliers map[intent.Method]float64
}

// DefaultWeights returns the tuned production weights.
func DefaultWeights() Weights {
	return Weights{
		Base:                  0.42,
		KeywordRatio:          0.4,
		Score:                 0.2,
		Position:              0.05,
		LengthDivisor:         30,
		LengthCap:             0.15,
		CategoryBonus:         0.15,
		VerbKeywordBonus:      0.05,
		ShortKeywordMaxLen:    2,
		ShortIsolatedPenalty:  0.3,
		ShortLongInputPenalty: 0.15,
		LongInputLen:          20,
		Min:                   0.1,
		Max:                   0.98,
		MethodMultipliers: map[intent.Method]float64{
			intent.MethodNormalized:      0.95,
			intent.MethodFuzzy:           0.85,
			intent.MethodPartialFuzzy:    0.7,
			intent.MethodSingleWordFuzzy: 0.75,
		},
	}
}

// Factors are the observations about one keyword hit that feed Score.
type Factors struct {
	KeywordLen           int
	InputLen             int
	MatchScore           float64
	StartsWithKeyword    bool
	ActionVerb           bool
	Active               bool
	KeywordHasVerb       bool
	ShortKeywordIsolated bool
	Method               intent.Method
}

func (w Weights) multiplier(m intent.Method) float64 {
	if v, ok := w.MethodMultipliers[m]; ok {
		return v
	}
	return 1
}

// Score turns the factors of a keyword hit into a confidence in [w.Min, w.Max].
func Score(w Weights, f Factors) float64 {
	inputLen := max(f.InputLen, 1)

	s := w.Base
	s += float64(f.KeywordLen) / float64(inputLen) * w.KeywordRatio
	s += f.MatchScore * w.Score
	if f.StartsWithKeyword {
		s += w.Position
	}
	if w.LengthDivisor > 0 {
		s += math.Min(float64(f.KeywordLen)/w.LengthDivisor, w.LengthCap)
	}
	if f.ActionVerb && f.Active {
		s += w.CategoryBonus
		if f.KeywordHasVerb {
			s += w.VerbKeywordBonus
		}
	}
	if f.KeywordLen <= w.ShortKeywordMaxLen {
		if !f.ShortKeywordIsolated {
			s -= w.ShortIsolatedPenalty
		} else if f.InputLen > w.LongInputLen {
			s -= w.ShortLongInputPenalty
		}
	}

	s *= w.multiplier(f.Method)
	return math.Max(w.Min, math.Min(s, w.Max))
}

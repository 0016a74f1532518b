package keyword

import "smartfactory-assistant/internal/intent"

// Signals are the input-wide cues a NavigationPolicy can look at.
type Signals struct {
	ActionVerb      bool
	NavigationCue   bool
	NormalizedInput string
}

// NavigationPolicy decides whether a passive action (navigation, help) is dropped
// from keyword scoring for a given input.
type NavigationPolicy interface {
	Suppress(a intent.Action, s Signals) bool
}

// VerbCuePolicy drops passive actions when the input carries an action verb
// but no explicit navigation cue, so "tạo tin tức" is not read as "go to news".
type VerbCuePolicy struct{}

func (VerbCuePolicy) Suppress(a intent.Action, s Signals) bool {
	return a.Category.IsPassive() && s.ActionVerb && !s.NavigationCue
}

// NeverSuppress keeps every permitted action in play.
type NeverSuppress struct{}

func (NeverSuppress) Suppress(intent.Action, Signals) bool { return false }

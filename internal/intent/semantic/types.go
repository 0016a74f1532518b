package semantic

import "smartfactory-assistant/internal/intent"

// MaxExamples caps the examples sent per action.
const MaxExamples = 3

// IntentBrief is the trimmed projection of an action sent to the reasoner.
type IntentBrief struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Examples    []string        `json:"examples"`
	Category    intent.Category `json:"category"`
}

// MatchRequest asks the reasoner to pick one of Intents for Input.
type MatchRequest struct {
	Input      string        `json:"input"`
	Intents    []IntentBrief `json:"intents"`
	ActorScope *string       `json:"actorScope"`
}

// Verdict is the reasoner's answer. An empty IntentID means no intent fits.
type Verdict struct {
	IntentID   string        `json:"intentId"`
	Confidence float64       `json:"confidence"`
	Reason     string        `json:"reason"`
	Params     intent.Params `json:"params,omitempty"`
}

// ExtractRequest asks the reasoner to split the command phrase from the content.
type ExtractRequest struct {
	Input    string `json:"input"`
	IntentID string `json:"intentId"`
}

// ExtractedContent is the content part of a command sentence.
type ExtractedContent struct {
	Content    string        `json:"content"`
	Title      string        `json:"title,omitempty"`
	Category   string        `json:"category,omitempty"`
	IsPriority bool          `json:"isPriority"`
	Params     intent.Params `json:"params,omitempty"`
}

// Brief projects an action for the reasoner.
func Brief(a intent.Action) IntentBrief {
	examples := a.Examples
	if len(examples) > MaxExamples {
		examples = examples[:MaxExamples]
	}
	return IntentBrief{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Examples:    append([]string(nil), examples...),
		Category:    a.Category,
	}
}

package intent

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Category groups actions. Navigation and help actions are treated specially by the resolver.
type Category string

const (
	CategoryNavigation   Category = "navigation"
	CategoryHelp         Category = "help"
	CategoryRoomBooking  Category = "room_booking"
	CategoryIncident     Category = "incident"
	CategoryIdea         Category = "idea"
	CategoryNews         Category = "news"
	CategoryNotification Category = "notification"
	CategoryQuery        Category = "query"
)

// IsPassive reports whether the category only moves the user around instead of doing something.
func (c Category) IsPassive() bool {
	return c == CategoryNavigation || c == CategoryHelp
}

// Method tags how a candidate was produced.
type Method string

const (
	MethodExact           Method = "exact"
	MethodNormalized      Method = "normalized"
	MethodFuzzy           Method = "fuzzy"
	MethodPartialFuzzy    Method = "partial_fuzzy"
	MethodSingleWordFuzzy Method = "single_word_fuzzy"
	MethodRegex           Method = "regex"
	MethodSemanticLLM     Method = "semantic_llm"
)

// IsFuzzy reports whether m came from an approximate keyword tier.
func (m Method) IsFuzzy() bool {
	return m == MethodFuzzy || m == MethodPartialFuzzy
}

// Action is one recognizable command in the catalogue. Actions are immutable after load.
type Action struct {
	ID                 string      `yaml:"id" json:"id"`
	Name               string      `yaml:"name" json:"name"`
	Description        string      `yaml:"description" json:"description"`
	Category           Category    `yaml:"category" json:"category"`
	Route              string      `yaml:"route,omitempty" json:"route,omitempty"`
	Keywords           []string    `yaml:"keywords" json:"keywords"`
	Shortcuts          []string    `yaml:"shortcuts,omitempty" json:"shortcuts,omitempty"`
	Pattern            string      `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Examples           []string    `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequiredPermission string      `yaml:"required_permission,omitempty" json:"required_permission,omitempty"`
	Invocation         *Invocation `yaml:"invocation,omitempty" json:"invocation,omitempty"`
	Handler            string      `yaml:"handler,omitempty" json:"handler,omitempty"`
	UsesAI             bool        `yaml:"uses_ai,omitempty" json:"uses_ai,omitempty"`
}

// Invocation describes the downstream call a caller should make for an action.
// The resolver only reads it.
type Invocation struct {
	Method   string               `yaml:"method" json:"method"`
	Endpoint string               `yaml:"endpoint" json:"endpoint"`
	Params   map[string]ParamSpec `yaml:"params,omitempty" json:"params,omitempty"`
	Payload  *PayloadSpec         `yaml:"payload,omitempty" json:"payload,omitempty"`
}

// ParamSpec maps user phrases to the canonical value of one parameter.
type ParamSpec struct {
	Keywords ValueKeywords `yaml:"keywords" json:"keywords"`
}

// PayloadSpec marks an action whose input embeds free text (a news body, for example).
type PayloadSpec struct {
	LeadIns         []string      `yaml:"lead_ins" json:"lead_ins"`
	CategoryCues    ValueKeywords `yaml:"category_cues,omitempty" json:"category_cues,omitempty"`
	DefaultCategory string        `yaml:"default_category,omitempty" json:"default_category,omitempty"`
	PriorityCues    []string      `yaml:"priority_cues,omitempty" json:"priority_cues,omitempty"`
}

// ValueKeyword is one canonical value with the phrases that select it.
type ValueKeyword struct {
	Value    string   `json:"value"`
	Keywords []string `json:"keywords"`
}

// ValueKeywords keeps declaration order so lookups are deterministic.
type ValueKeywords []ValueKeyword

// UnmarshalYAML decodes a mapping of value -> [keywords] preserving key order.
// Anchored tables can be shared between actions through aliases.
func (v *ValueKeywords) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: keyword table must be a mapping", node.Line)
	}
	out := make(ValueKeywords, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var kws []string
		if err := node.Content[i+1].Decode(&kws); err != nil {
			return fmt.Errorf("line %d: %w", node.Content[i+1].Line, err)
		}
		out = append(out, ValueKeyword{Value: node.Content[i].Value, Keywords: kws})
	}
	*v = out
	return nil
}

// Params holds slot values keyed by slot name.
type Params map[string]any

// Candidate is one scored interpretation of an input.
type Candidate struct {
	Action         Action
	Confidence     float64
	Method         Method
	MatchedKeyword string
	MatchScore     float64
	Params         Params
}

// Resolved is the final decision handed to callers.
type Resolved struct {
	ActionID           string      `json:"action_id"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	Category           Category    `json:"category"`
	Route              string      `json:"route,omitempty"`
	Handler            string      `json:"handler,omitempty"`
	Invocation         *Invocation `json:"invocation,omitempty"`
	RequiredPermission string      `json:"required_permission,omitempty"`
	UsesAI             bool        `json:"uses_ai,omitempty"`
	Confidence         float64     `json:"confidence"`
	Method             Method      `json:"method"`
	MatchedKeyword     string      `json:"matched_keyword,omitempty"`
	Params             Params      `json:"params"`
	LLMConfirmed       bool        `json:"llm_confirmed,omitempty"`
	SemanticReason     string      `json:"semantic_reason,omitempty"`
	NeedsClarification bool        `json:"needs_clarification,omitempty"`
	Payload            *Payload    `json:"payload,omitempty"`
}

// Payload is the free text separated from the command phrase.
type Payload struct {
	Content         string `json:"content"`
	Title           string `json:"title,omitempty"`
	Category        string `json:"category,omitempty"`
	IsPriority      bool   `json:"is_priority"`
	Params          Params `json:"params,omitempty"`
	NeedsMoreDetail bool   `json:"needs_more_detail,omitempty"`
	Source          string `json:"source"`
}

const (
	PayloadSourceReasoner = "reasoner"
	PayloadSourceLocal    = "local"
)

// ExtractPayloadInput asks for the payload of a specific action.
type ExtractPayloadInput struct {
	Text     string
	ActionID string
}

// SuggestInput drives action suggestions for partially typed input.
type SuggestInput struct {
	Query string
	Limit int
}

// Suggestion is one action offered for a partial query.
type Suggestion struct {
	ActionID string   `json:"action_id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Matched  string   `json:"matched"`
	Example  string   `json:"example,omitempty"`
}

// CacheStats reports the resolver caches.
type CacheStats struct {
	Entries        int    `json:"entries"`
	PayloadEntries int    `json:"payload_entries"`
	TTL            string `json:"ttl"`
}

package semantic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"smartfactory-assistant/pkg/llmprovider"
	"smartfactory-assistant/pkg/log"
)

// Generator produces model text. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLMReasoner prompts a language model directly.
type LLMReasoner struct {
	llm Generator
	l   log.Logger
}

var _ Reasoner = (*LLMReasoner)(nil)

// NewLLMReasoner creates an in-process reasoner.
func NewLLMReasoner(l log.Logger, llm Generator) *LLMReasoner {
	return &LLMReasoner{llm: llm, l: l}
}

// MatchIntent asks the model to pick one of req.Intents.
// Verdicts naming an intent outside the list are downgraded to no intent.
func (r *LLMReasoner) MatchIntent(ctx context.Context, req MatchRequest) (Verdict, error) {
	list, err := json.Marshal(req.Intents)
	if err != nil {
		return Verdict{}, fmt.Errorf("%s: marshal intents: %w", logPrefixLLMMatch, err)
	}
	role := "không xác định"
	if req.ActorScope != nil {
		role = *req.ActorScope
	}

	text, err := r.generate(ctx, promptMatchSystem, fmt.Sprintf(promptMatchUser, req.Input, role, list))
	if err != nil {
		return Verdict{}, fmt.Errorf("%s: %w", logPrefixLLMMatch, err)
	}

	var raw struct {
		IntentID   *string        `json:"intentId"`
		Confidence float64        `json:"confidence"`
		Reason     string         `json:"reason"`
		Params     map[string]any `json:"params"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &raw); err != nil {
		r.l.Warnf(ctx, "%s: failed to parse JSON: %v", logPrefixLLMMatch, err)
		return Verdict{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	c, ok := normalizeConfidence(raw.Confidence)
	if !ok {
		return Verdict{}, fmt.Errorf("%w: confidence %v out of range", ErrMalformedResponse, raw.Confidence)
	}

	v := Verdict{Confidence: c, Reason: raw.Reason, Params: raw.Params}
	if raw.IntentID != nil {
		v.IntentID = strings.TrimSpace(*raw.IntentID)
	}
	if v.IntentID != "" && !listed(req.Intents, v.IntentID) {
		r.l.Warnf(ctx, "%s: model chose unknown intent %q", logPrefixLLMMatch, v.IntentID)
		v = Verdict{Reason: v.Reason}
	}

	r.l.Infof(ctx, "%s: classified as %q (confidence: %.2f)", logPrefixLLMMatch, v.IntentID, v.Confidence)
	return v, nil
}

// ExtractContent asks the model to isolate the content of a command.
func (r *LLMReasoner) ExtractContent(ctx context.Context, req ExtractRequest) (ExtractedContent, error) {
	text, err := r.generate(ctx, promptExtractSystem, fmt.Sprintf(promptExtractUser, req.IntentID, req.Input))
	if err != nil {
		return ExtractedContent{}, fmt.Errorf("%s: %w", logPrefixLLMExtract, err)
	}

	var c ExtractedContent
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &c); err != nil {
		r.l.Warnf(ctx, "%s: failed to parse JSON: %v", logPrefixLLMExtract, err)
		return ExtractedContent{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	c.Content = strings.TrimSpace(c.Content)
	if c.Content == "" {
		return ExtractedContent{}, fmt.Errorf("%w: empty content", ErrMalformedResponse)
	}
	return c, nil
}

func (r *LLMReasoner) generate(ctx context.Context, system, prompt string) (string, error) {
	resp, err := r.llm.GenerateContent(ctx, llmprovider.UserPrompt(system, prompt, llmTemperature))
	if err != nil {
		switch {
		case errors.Is(err, llmprovider.ErrProviderRateLimited):
			r.l.Warnf(ctx, "%s: rate limited: %v", logPrefixLLMGenerate, err)
		case errors.Is(err, llmprovider.ErrProviderTimeout):
			r.l.Warnf(ctx, "%s: timed out: %v", logPrefixLLMGenerate, err)
		}
		return "", fmt.Errorf("%w: %w", ErrReasonerUnavailable, err)
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return "", fmt.Errorf("%w: empty LLM response", ErrMalformedResponse)
	}
	return resp.Text, nil
}

// stripCodeFence removes a surrounding ```json ... ``` block.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// normalizeConfidence accepts both 0-1 and 0-100 scales.
func normalizeConfidence(c float64) (float64, bool) {
	switch {
	case c < 0 || c > 100:
		return 0, false
	case c > 1:
		return c / 100, true
	default:
		return c, true
	}
}

func listed(briefs []IntentBrief, id string) bool {
	for _, b := range briefs {
		if b.ID == id {
			return true
		}
	}
	return false
}

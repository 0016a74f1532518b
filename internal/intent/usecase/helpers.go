package usecase

import (
	"strings"
	"unicode/utf8"

	"smartfactory-assistant/internal/intent"
)

// checkInput trims text and reports whether it is long enough to resolve.
// Input past MaxInputLen runes is cut to that length.
func (uc *implUseCase) checkInput(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if uc.cfg.MaxInputLen > 0 && utf8.RuneCountInString(text) > uc.cfg.MaxInputLen {
		text = strings.TrimSpace(string([]rune(text)[:uc.cfg.MaxInputLen]))
	}
	if utf8.RuneCountInString(text) < uc.cfg.MinInputLen {
		return "", false
	}
	return text, true
}

// overlay copies dst and writes every src value over it.
func overlay(dst, src intent.Params) intent.Params {
	out := make(intent.Params, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		out[k] = v
	}
	return out
}

// fill copies dst and adds src values only for missing keys.
func fill(dst, src intent.Params) intent.Params {
	out := make(intent.Params, len(dst)+len(src))
	for k, v := range src {
		out[k] = v
	}
	for k, v := range dst {
		out[k] = v
	}
	return out
}

func (uc *implUseCase) toResolved(c intent.Candidate) *intent.Resolved {
	a := c.Action
	params := c.Params
	if params == nil {
		params = intent.Params{}
	}
	return &intent.Resolved{
		ActionID:           a.ID,
		Name:               a.Name,
		Description:        a.Description,
		Category:           a.Category,
		Route:              a.Route,
		Handler:            a.Handler,
		Invocation:         a.Invocation,
		RequiredPermission: a.RequiredPermission,
		UsesAI:             a.UsesAI || c.Method == intent.MethodSemanticLLM,
		Confidence:         c.Confidence,
		Method:             c.Method,
		MatchedKeyword:     c.MatchedKeyword,
		Params:             params,
		NeedsClarification: c.Confidence < uc.cfg.UsabilityFloor,
	}
}

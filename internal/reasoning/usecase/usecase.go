package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"smartfactory-assistant/internal/intent/semantic"
	"smartfactory-assistant/internal/reasoning"
)

const (
	logPrefixMatchIntent    = "internal.reasoning.usecase.MatchIntent"
	logPrefixExtractContent = "internal.reasoning.usecase.ExtractContent"

	reasonNoCandidates = "không có ý định nào để so khớp"
)

// MatchIntent picks one of the offered intents. An empty intent list is
// answered with a null verdict without prompting the model.
func (uc *implUseCase) MatchIntent(ctx context.Context, req semantic.MatchRequest) (semantic.Verdict, error) {
	in, err := uc.checkInput(req.Input)
	if err != nil {
		return semantic.Verdict{}, err
	}
	if len(req.Intents) == 0 {
		return semantic.Verdict{Reason: reasonNoCandidates}, nil
	}
	req.Input = in

	v, err := uc.reasoner.MatchIntent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", logPrefixMatchIntent, err)
		return semantic.Verdict{}, err
	}
	uc.l.Infof(ctx, "%s: %q -> %q (%.2f) over %d intents", logPrefixMatchIntent, in, v.IntentID, v.Confidence, len(req.Intents))
	return v, nil
}

// ExtractContent splits the command phrase from the content.
func (uc *implUseCase) ExtractContent(ctx context.Context, req semantic.ExtractRequest) (semantic.ExtractedContent, error) {
	in, err := uc.checkInput(req.Input)
	if err != nil {
		return semantic.ExtractedContent{}, err
	}
	if strings.TrimSpace(req.IntentID) == "" {
		return semantic.ExtractedContent{}, reasoning.ErrNoIntentID
	}
	req.Input = in

	c, err := uc.reasoner.ExtractContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", logPrefixExtractContent, err)
		return semantic.ExtractedContent{}, err
	}
	return c, nil
}

func (uc *implUseCase) checkInput(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", reasoning.ErrEmptyInput
	}
	if uc.maxInputLen > 0 && utf8.RuneCountInString(s) > uc.maxInputLen {
		return "", reasoning.ErrInputTooLong
	}
	return s, nil
}

package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/model"
)

// ExtractPayload separates the free-text body of a command for a given action.
func (uc *implUseCase) ExtractPayload(ctx context.Context, sc model.Scope, input intent.ExtractPayloadInput) (intent.Payload, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return intent.Payload{}, intent.ErrEmptyInput
	}
	if uc.cfg.MaxInputLen > 0 && utf8.RuneCountInString(text) > uc.cfg.MaxInputLen {
		return intent.Payload{}, intent.ErrInputTooLong
	}

	a, ok := uc.cat.Get(input.ActionID)
	if !ok {
		return intent.Payload{}, intent.ErrActionNotFound
	}
	if !model.Allowed(a.RequiredPermission, sc.Role) {
		uc.l.Warnf(ctx, "%s: user=%s role=%q denied %s", logPrefixExtractPayload, sc.UserID, sc.Role, a.ID)
		return intent.Payload{}, intent.ErrForbidden
	}
	if a.Invocation == nil || a.Invocation.Payload == nil {
		return intent.Payload{}, intent.ErrNoPayload
	}

	p, err := uc.payloads.Extract(ctx, text, a)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", logPrefixExtractPayload, err)
		return intent.Payload{}, err
	}
	return p, nil
}

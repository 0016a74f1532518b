package usecase

import (
	"context"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/model"
)

// Resolve runs the keyword resolver and slot extraction only.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, text string) (*intent.Resolved, error) {
	in, ok := uc.checkInput(text)
	if !ok {
		return nil, nil
	}

	c, found := uc.keywords.Resolve(in, sc)
	if !found {
		uc.l.Debugf(ctx, "%s: no keyword match for %q", logPrefixResolve, in)
		return nil, nil
	}

	c.Params = overlay(c.Params, uc.slots.Extract(in, c.Action))
	res := uc.toResolved(c)
	uc.l.Infof(ctx, "%s: user=%s %q -> %s (%.2f, %s)", logPrefixResolve, sc.UserID, in, res.ActionID, res.Confidence, res.Method)
	return res, nil
}

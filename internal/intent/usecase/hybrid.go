package usecase

import (
	"context"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/intent/semantic"
	"smartfactory-assistant/internal/model"
)

// ResolveHybrid resolves locally first and consults the semantic fallback only
// when the keyword result is missing, weak or fuzzy. Fallback failures are
// logged and never returned.
func (uc *implUseCase) ResolveHybrid(ctx context.Context, sc model.Scope, text string) (*intent.Resolved, error) {
	in, ok := uc.checkInput(text)
	if !ok {
		return nil, nil
	}

	kw, found := uc.keywords.Resolve(in, sc)
	final, hasFinal := kw, found

	var (
		reason    string
		confirmed bool
		semParams intent.Params
		replaced  bool
	)

	if uc.shouldFallback(kw, found) {
		v, err := uc.semantic.Match(ctx, in, sc)
		if err != nil {
			uc.l.Warnf(ctx, "%s: semantic fallback unavailable, keeping keyword result: %v", logPrefixResolveHybrid, err)
		} else if sem, usable := semantic.ToCandidate(v, uc.cat.Permitted(sc.Role)); usable {
			switch {
			case found && sem.Action.ID == kw.Action.ID:
				final.Confidence = min(kw.Confidence+confirmBoost, confirmCeiling)
				confirmed, reason, semParams = true, v.Reason, sem.Params
			case !found || sem.Confidence > kw.Confidence:
				final, hasFinal = sem, true
				replaced, reason, semParams = true, v.Reason, sem.Params
			}
		} else {
			uc.l.Debugf(ctx, "%s: no usable verdict for %q (%q, %.2f)", logPrefixResolveHybrid, in, v.IntentID, v.Confidence)
		}
	}

	if !hasFinal {
		uc.l.Debugf(ctx, "%s: no match for %q", logPrefixResolveHybrid, in)
		return nil, nil
	}

	var params intent.Params
	if found {
		params = kw.Params
	}
	params = overlay(params, uc.slots.Extract(in, final.Action))
	switch {
	case replaced:
		params = overlay(params, semParams)
	case confirmed:
		params = fill(params, semParams)
	}
	final.Params = params

	res := uc.toResolved(final)
	res.LLMConfirmed = confirmed
	res.SemanticReason = reason

	if a := final.Action; a.Invocation != nil && a.Invocation.Payload != nil && uc.payloads != nil {
		p, err := uc.payloads.Extract(ctx, in, a)
		if err != nil {
			uc.l.Warnf(ctx, "%s: payload extraction failed: %v", logPrefixResolveHybrid, err)
		} else {
			res.Payload = &p
		}
	}

	uc.l.Infof(ctx, "%s: user=%s %q -> %s (%.2f, %s, confirmed=%t)",
		logPrefixResolveHybrid, sc.UserID, in, res.ActionID, res.Confidence, res.Method, res.LLMConfirmed)
	return res, nil
}

func (uc *implUseCase) shouldFallback(kw intent.Candidate, found bool) bool {
	if !uc.cfg.SemanticEnabled {
		return false
	}
	if !found {
		return true
	}
	if kw.Confidence >= uc.cfg.HighConfidence {
		return false
	}
	return kw.Confidence < uc.cfg.FallbackBelow || kw.Method.IsFuzzy()
}

package semantic

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/model"
	"smartfactory-assistant/pkg/log"
	"smartfactory-assistant/pkg/textmatch"
)

// Catalogue lists the actions a role may invoke.
type Catalogue interface {
	Permitted(role string) []intent.Action
}

// Matcher asks a Reasoner to classify input, caching verdicts per input and role.
// Concurrent misses for the same key share one reasoner call.
type Matcher struct {
	reasoner Reasoner
	cat      Catalogue
	cache    *Cache[Verdict]
	timeout  time.Duration
	group    singleflight.Group
	l        log.Logger
}

// NewMatcher creates a Matcher. A zero timeout means DefaultTimeout.
func NewMatcher(l log.Logger, reasoner Reasoner, cat Catalogue, cache *Cache[Verdict], timeout time.Duration) *Matcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Matcher{
		reasoner: reasoner,
		cat:      cat,
		cache:    cache,
		timeout:  timeout,
		l:        l,
	}
}

// CacheKey identifies a verdict by normalized input and role.
func CacheKey(input, role string) string {
	return textmatch.Canonical(input) + ":" + role
}

// Match returns the verdict for input under scope sc.
// The shared call is detached from ctx, so a caller giving up still lets it fill the cache.
func (m *Matcher) Match(ctx context.Context, input string, sc model.Scope) (Verdict, error) {
	key := CacheKey(input, sc.Role)
	if v, ok := m.cache.Get(key); ok {
		m.l.Debugf(ctx, "%s: cache hit for %q", logPrefixMatch, key)
		return v, nil
	}

	ch := m.group.DoChan(key, func() (any, error) {
		if v, ok := m.cache.Get(key); ok {
			return v, nil
		}

		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
		defer cancel()

		v, err := m.reasoner.MatchIntent(callCtx, m.request(input, sc))
		if err != nil {
			return Verdict{}, err
		}
		m.cache.Set(key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return Verdict{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			m.l.Warnf(ctx, "%s: reasoner failed: %v", logPrefixMatch, res.Err)
			return Verdict{}, fmt.Errorf("%w: %w", ErrReasonerUnavailable, res.Err)
		}
		v := res.Val.(Verdict)
		m.l.Infof(ctx, "%s: %q -> %q (%.2f)", logPrefixMatch, input, v.IntentID, v.Confidence)
		return v, nil
	}
}

// Stats returns the cache size and TTL.
func (m *Matcher) Stats() (int, time.Duration) {
	return m.cache.Len(), m.cache.TTL()
}

// Clear empties the verdict cache.
func (m *Matcher) Clear() {
	m.cache.Purge()
}

func (m *Matcher) request(input string, sc model.Scope) MatchRequest {
	permitted := m.cat.Permitted(sc.Role)
	briefs := make([]IntentBrief, 0, len(permitted))
	for _, a := range permitted {
		briefs = append(briefs, Brief(a))
	}

	req := MatchRequest{Input: input, Intents: briefs}
	if sc.Role != "" {
		role := sc.Role
		req.ActorScope = &role
	}
	return req
}

// ToCandidate converts a usable verdict into a candidate for a permitted action.
func ToCandidate(v Verdict, permitted []intent.Action) (intent.Candidate, bool) {
	if v.IntentID == "" || v.Confidence < MinUsableConfidence {
		return intent.Candidate{}, false
	}
	for _, a := range permitted {
		if a.ID != v.IntentID {
			continue
		}
		params := intent.Params{}
		for k, val := range v.Params {
			params[k] = val
		}
		return intent.Candidate{
			Action:     a,
			Confidence: min(v.Confidence, 1),
			Method:     intent.MethodSemanticLLM,
			MatchScore: v.Confidence,
			Params:     params,
		}, true
	}
	return intent.Candidate{}, false
}

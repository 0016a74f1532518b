package usecase

import (
	"context"

	"github.com/sahilm/fuzzy"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/model"
	"smartfactory-assistant/pkg/textmatch"
)

// ListActions returns the actions the caller may invoke, in catalogue order.
func (uc *implUseCase) ListActions(ctx context.Context, sc model.Scope) ([]intent.Action, error) {
	return uc.cat.Permitted(sc.Role), nil
}

type phrase struct {
	action int
	text   string
	folded string
}

// phrases is a fuzzy.Source over diacritic-free phrases.
type phrases []phrase

func (p phrases) String(i int) string { return p[i].folded }
func (p phrases) Len() int            { return len(p) }

// Suggest ranks permitted actions by fuzzy similarity of their names,
// keywords and examples to a partial query. One entry per action.
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope, input intent.SuggestInput) ([]intent.Suggestion, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	limit = min(limit, maxSuggestLimit)

	actions := uc.cat.Permitted(sc.Role)
	query := textmatch.FoldedCanonical(input.Query)
	if query == "" {
		out := make([]intent.Suggestion, 0, min(limit, len(actions)))
		for _, a := range actions[:min(limit, len(actions))] {
			out = append(out, suggestion(a, a.Name))
		}
		return out, nil
	}

	var src phrases
	for i, a := range actions {
		texts := append([]string{a.Name}, a.Keywords...)
		texts = append(texts, a.Examples...)
		for _, t := range texts {
			src = append(src, phrase{action: i, text: t, folded: textmatch.FoldedCanonical(t)})
		}
	}

	seen := make(map[int]struct{})
	out := make([]intent.Suggestion, 0, limit)
	for _, m := range fuzzy.FindFrom(query, src) {
		p := src[m.Index]
		if _, dup := seen[p.action]; dup {
			continue
		}
		seen[p.action] = struct{}{}
		out = append(out, suggestion(actions[p.action], p.text))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func suggestion(a intent.Action, matched string) intent.Suggestion {
	s := intent.Suggestion{
		ActionID: a.ID,
		Name:     a.Name,
		Category: a.Category,
		Matched:  matched,
	}
	if len(a.Examples) > 0 {
		s.Example = a.Examples[0]
	}
	return s
}

// CacheStats reports the size of the verdict and payload caches.
func (uc *implUseCase) CacheStats(ctx context.Context) intent.CacheStats {
	var st intent.CacheStats
	if uc.semantic != nil {
		n, ttl := uc.semantic.Stats()
		st.Entries, st.TTL = n, ttl.String()
	}
	if uc.payloads != nil {
		st.PayloadEntries = uc.payloads.Len()
	}
	return st
}

// ClearCache drops every cached verdict and payload.
func (uc *implUseCase) ClearCache(ctx context.Context) {
	if uc.semantic != nil {
		uc.semantic.Clear()
	}
	if uc.payloads != nil {
		uc.payloads.Clear()
	}
	uc.l.Infof(ctx, "%s: caches cleared", logPrefixClearCache)
}

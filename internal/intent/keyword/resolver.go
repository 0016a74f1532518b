// Package keyword scores catalogue actions against an input with the fuzzy
// phrase matcher. It is synchronous and never touches the network.
package keyword

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/model"
	"smartfactory-assistant/pkg/textmatch"
)

const (
	ShortcutConfidence = 1.0
	PatternConfidence  = 0.95
)

// ParamPatternGroups holds the submatches of a structural pattern.
const ParamPatternGroups = "patternGroups"

// Catalogue is the part of the action registry the resolver reads.
type Catalogue interface {
	Permitted(role string) []intent.Action
	Pattern(id string) *regexp.Regexp
	ActionVerbs() []string
	NavigationCues() []string
}

// Resolver ranks permitted actions for an input.
type Resolver struct {
	cat       Catalogue
	weights   Weights
	threshold float64
	policy    NavigationPolicy
	verbs     [][]string
	cues      [][]string
}

// Option customizes a Resolver.
type Option func(*Resolver)

func WithWeights(w Weights) Option { return func(r *Resolver) { r.weights = w } }

func WithThreshold(t float64) Option {
	return func(r *Resolver) {
		if t > 0 {
			r.threshold = t
		}
	}
}

func WithPolicy(p NavigationPolicy) Option {
	return func(r *Resolver) {
		if p != nil {
			r.policy = p
		}
	}
}

// New creates a Resolver over cat.
func New(cat Catalogue, opts ...Option) *Resolver {
	r := &Resolver{
		cat:       cat,
		weights:   DefaultWeights(),
		threshold: textmatch.DefaultThreshold,
		policy:    VerbCuePolicy{},
		verbs:     tokenizeAll(cat.ActionVerbs()),
		cues:      tokenizeAll(cat.NavigationCues()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the best candidate for input, if any.
func (r *Resolver) Resolve(input string, sc model.Scope) (intent.Candidate, bool) {
	cands := r.Rank(input, sc)
	if len(cands) == 0 {
		return intent.Candidate{}, false
	}
	return cands[0], true
}

// Rank scores every permitted action and returns the hits by descending confidence.
// Equal confidences fall back to the raw match score, then catalogue order.
func (r *Resolver) Rank(input string, sc model.Scope) []intent.Candidate {
	in := textmatch.Canonical(input)
	if in == "" {
		return nil
	}
	folded := textmatch.Fold(in)
	permitted := r.cat.Permitted(sc.Role)

	if c, ok := r.shortcut(in, folded, permitted); ok {
		return []intent.Candidate{c}
	}

	words := tokenize(in)
	signals := Signals{
		ActionVerb:      containsAnyPhrase(words, r.verbs),
		NavigationCue:   containsAnyPhrase(words, r.cues),
		NormalizedInput: in,
	}
	inputLen := utf8.RuneCountInString(in)
	foldedWords := tokenize(folded)

	var cands []intent.Candidate
	for _, a := range permitted {
		if re := r.cat.Pattern(a.ID); re != nil {
			if m := re.FindStringSubmatch(in); m != nil {
				params := intent.Params{}
				if len(m) > 1 {
					params[ParamPatternGroups] = m[1:]
				}
				cands = append(cands, intent.Candidate{
					Action:     a,
					Confidence: PatternConfidence,
					Method:     intent.MethodRegex,
					MatchScore: 1,
					Params:     params,
				})
				continue
			}
		}

		if r.policy.Suppress(a, signals) {
			continue
		}

		hit, ok := textmatch.Best(in, a.Keywords, r.threshold)
		if !ok {
			continue
		}

		kw := textmatch.Canonical(hit.Keyword)
		kwWords := tokenize(kw)
		method := intent.Method(hit.Method)
		conf := Score(r.weights, Factors{
			KeywordLen:           utf8.RuneCountInString(kw),
			InputLen:             inputLen,
			MatchScore:           hit.Score,
			StartsWithKeyword:    strings.HasPrefix(in, kw) || strings.HasPrefix(folded, textmatch.Fold(kw)),
			ActionVerb:           signals.ActionVerb,
			Active:               !a.Category.IsPassive(),
			KeywordHasVerb:       r.hasVerb(kwWords),
			ShortKeywordIsolated: containsPhrase(words, kwWords) || containsPhrase(foldedWords, tokenize(textmatch.Fold(kw))),
			Method:               method,
		})

		cands = append(cands, intent.Candidate{
			Action:         a,
			Confidence:     conf,
			Method:         method,
			MatchedKeyword: hit.Keyword,
			MatchScore:     hit.Score,
			Params:         intent.Params{},
		})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Confidence != cands[j].Confidence {
			return cands[i].Confidence > cands[j].Confidence
		}
		return cands[i].MatchScore > cands[j].MatchScore
	})
	return cands
}

func (r *Resolver) shortcut(in, folded string, permitted []intent.Action) (intent.Candidate, bool) {
	for _, a := range permitted {
		for _, s := range a.Shortcuts {
			if in == textmatch.Canonical(s) || folded == textmatch.FoldedCanonical(s) {
				return intent.Candidate{
					Action:         a,
					Confidence:     ShortcutConfidence,
					Method:         intent.MethodExact,
					MatchedKeyword: s,
					MatchScore:     1,
					Params:         intent.Params{},
				}, true
			}
		}
	}
	return intent.Candidate{}, false
}

func (r *Resolver) hasVerb(kwWords []string) bool {
	if containsAnyPhrase(kwWords, r.verbs) {
		return true
	}
	folded := make([]string, len(kwWords))
	for i, w := range kwWords {
		folded[i] = textmatch.Fold(w)
	}
	return containsAnyPhrase(folded, r.verbs)
}

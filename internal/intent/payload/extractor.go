// Package payload separates the free-text body of a command from the command phrase.
package payload

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/intent/semantic"
	"smartfactory-assistant/internal/intent/slot"
	"smartfactory-assistant/pkg/log"
	"smartfactory-assistant/pkg/textmatch"
)

const logPrefixExtract = "internal.intent.payload.Extract"

// MaxTitleRunes bounds a generated title.
const MaxTitleRunes = 80

const (
	// maxLeadInShare is the largest share of the input a lead-in may consume and still be stripped.
	maxLeadInShare  = 0.7
	minContentRunes = 5
	minContentWords = 2
)

// commandWords never count as content when judging whether a command carries enough detail.
var commandWords = map[string]struct{}{
	"tạo": {}, "tin": {}, "tức": {}, "thông": {}, "báo": {}, "viết": {}, "đăng": {}, "soạn": {},
	"muốn": {}, "cần": {}, "tôi": {}, "mình": {}, "gửi": {}, "ý": {}, "tưởng": {}, "góp": {},
	"đề": {}, "xuất": {}, "hãy": {}, "xin": {}, "giúp": {}, "về": {}, "là": {}, "rằng": {},
}

// LeadIns returns the compiled lead-in patterns of an action.
type LeadIns interface {
	LeadIns(id string) []*regexp.Regexp
}

// Extractor asks the reasoner first and falls back to local rules.
type Extractor struct {
	reasoner semantic.Reasoner
	leadIns  LeadIns
	cache    *semantic.Cache[intent.Payload]
	timeout  time.Duration
	l        log.Logger
}

// New creates an Extractor. reasoner may be nil for local-only extraction.
func New(l log.Logger, reasoner semantic.Reasoner, leadIns LeadIns, cache *semantic.Cache[intent.Payload], timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = semantic.DefaultTimeout
	}
	return &Extractor{
		reasoner: reasoner,
		leadIns:  leadIns,
		cache:    cache,
		timeout:  timeout,
		l:        l,
	}
}

// Extract returns the payload of input for action a.
func (e *Extractor) Extract(ctx context.Context, input string, a intent.Action) (intent.Payload, error) {
	if a.Invocation == nil || a.Invocation.Payload == nil {
		return intent.Payload{}, intent.ErrNoPayload
	}

	key := a.ID + ":" + textmatch.Canonical(input)
	if p, ok := e.cache.Get(key); ok {
		return p, nil
	}

	if e.reasoner != nil {
		p, err := e.fromReasoner(ctx, input, a)
		if err == nil {
			e.cache.Set(key, p)
			return p, nil
		}
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return intent.Payload{}, err
		}
		e.l.Warnf(ctx, "%s: reasoner failed, using local rules: %v", logPrefixExtract, err)
		return e.local(input, a), nil
	}

	p := e.local(input, a)
	e.cache.Set(key, p)
	return p, nil
}

// Len returns the number of cached payloads.
func (e *Extractor) Len() int {
	return e.cache.Len()
}

// Clear drops every cached payload.
func (e *Extractor) Clear() {
	e.cache.Purge()
}

func (e *Extractor) fromReasoner(ctx context.Context, input string, a intent.Action) (intent.Payload, error) {
	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	c, err := e.reasoner.ExtractContent(cctx, semantic.ExtractRequest{Input: input, IntentID: a.ID})
	if err != nil {
		return intent.Payload{}, err
	}

	spec := a.Invocation.Payload
	content := strings.TrimSpace(c.Content)
	if utf8.RuneCountInString(content) < minContentRunes {
		content = strings.TrimSpace(input)
	}
	content = capitalize(content)

	p := intent.Payload{
		Content:         content,
		Title:           c.Title,
		Category:        c.Category,
		IsPriority:      c.IsPriority || hasPriorityCue(content, spec.PriorityCues),
		Params:          c.Params,
		NeedsMoreDetail: needsMoreDetail(input),
		Source:          intent.PayloadSourceReasoner,
	}
	if p.Title == "" {
		p.Title = title(content)
	}
	if p.Category == "" {
		p.Category = category(content, spec)
	}
	return p, nil
}

func (e *Extractor) local(input string, a intent.Action) intent.Payload {
	spec := a.Invocation.Payload
	content := stripLeadIn(strings.TrimSpace(input), e.leadIns.LeadIns(a.ID))
	if utf8.RuneCountInString(content) < minContentRunes {
		content = strings.TrimSpace(input)
	}
	content = capitalize(content)

	return intent.Payload{
		Content:         content,
		Title:           title(content),
		Category:        category(content, spec),
		IsPriority:      hasPriorityCue(content, spec.PriorityCues),
		NeedsMoreDetail: needsMoreDetail(input),
		Source:          intent.PayloadSourceLocal,
	}
}

// stripLeadIn removes the first lead-in that covers less than 70% of input.
func stripLeadIn(input string, patterns []*regexp.Regexp) string {
	total := utf8.RuneCountInString(input)
	for _, re := range patterns {
		loc := re.FindStringIndex(input)
		if loc == nil || loc[0] != 0 {
			continue
		}
		if float64(utf8.RuneCountInString(input[:loc[1]])) < maxLeadInShare*float64(total) {
			return strings.TrimSpace(input[loc[1]:])
		}
	}
	return input
}

func category(content string, spec *intent.PayloadSpec) string {
	if v, ok := slot.Lookup(content, spec.CategoryCues); ok {
		return v
	}
	return spec.DefaultCategory
}

func hasPriorityCue(content string, cues []string) bool {
	lower := textmatch.Canonical(content)
	for _, cue := range cues {
		if c := textmatch.Canonical(cue); c != "" && strings.Contains(lower, c) {
			return true
		}
	}
	return false
}

func needsMoreDetail(input string) bool {
	n := 0
	for _, w := range strings.Fields(textmatch.Canonical(input)) {
		w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
		if w == "" {
			continue
		}
		if _, ok := commandWords[w]; !ok {
			n++
		}
	}
	return n < minContentWords
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// title is the first line of content cut to MaxTitleRunes at a word boundary.
func title(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	line = strings.TrimSpace(line)
	if utf8.RuneCountInString(line) <= MaxTitleRunes {
		return line
	}
	runes := []rune(line)[:MaxTitleRunes]
	cut := string(runes)
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}

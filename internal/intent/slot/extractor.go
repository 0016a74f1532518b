// Package slot pulls structured values out of a command sentence. Every
// recognizer is total: a field is simply absent when nothing matches.
package slot

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/pkg/datemath"
	"smartfactory-assistant/pkg/textmatch"
)

// Slot names.
const (
	Date         = "date"
	DateFrom     = "dateFrom"
	DateTo       = "dateTo"
	Month        = "month"
	Year         = "year"
	RelativeDate = "relativeDate"
	StartTime    = "startTime"
	EndTime      = "endTime"
	Attendees    = "attendees"
	PartOfDay    = "partOfDay"
)

const isoDate = "2006-01-02"

var (
	fullDateRe    = regexp.MustCompile(`(?:ngày|ngay)\s+(\d{1,2})\s+(?:tháng|thang)\s+(\d{1,2})(?:\s*,?\s*(?:năm|nam)\s+(\d{4}))?`)
	numericDateRe = regexp.MustCompile(`(?:^|[^\d/-])(\d{1,2})([/-])(\d{1,2})(?:([/-])(\d{4}|\d{2}))?(?:[^\d/-]|$)`)
	monthRe       = regexp.MustCompile(`(?:^|\s)(?:tháng|thang|t)\s*(\d{1,2})(?:\s*(?:[/-]|năm|nam)\s*(\d{4}))?(?:\D|$)`)
	yearRe        = regexp.MustCompile(`(?:^|\D)(\d{4})(?:\D|$)`)

	timeRangeRe = regexp.MustCompile(`(?:từ|tu)\s*(\d{1,2})(?:[:h](\d{2}))?\s*(?:giờ|gio|h)?\s*(?:đến|den|tới|toi|-)\s*(\d{1,2})(?:[:h](\d{2}))?`)
	atTimeRe    = regexp.MustCompile(`(?:lúc|luc)\s*(\d{1,2})(?:[:h](\d{2}))?`)
	attendeeRe  = regexp.MustCompile(`(\d+)\s*(?:người|nguoi|person|people|pax)`)
)

var partsOfDay = []struct {
	word  string
	value string
}{
	{"sáng", "morning"},
	{"trưa", "noon"},
	{"chiều", "afternoon"},
	{"tối", "evening"},
}

// Extractor extracts slot values relative to a clock and timezone.
type Extractor struct {
	dates *datemath.Parser
	now   func() time.Time
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithClock overrides the clock used for relative dates and default years.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an Extractor using dates for calendar math.
func New(dates *datemath.Parser, opts ...Option) *Extractor {
	e := &Extractor{dates: dates, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns every slot found in input for action a.
func (e *Extractor) Extract(input string, a intent.Action) intent.Params {
	in := textmatch.Canonical(input)
	folded := textmatch.Fold(in)
	p := intent.Params{}

	e.extractDate(in, p)
	extractTime(in, folded, p)
	extractAttendees(in, folded, p)
	extractPartOfDay(in, p)
	extractTables(in, folded, a, p)
	return p
}

func (e *Extractor) extractDate(in string, p intent.Params) {
	now := e.now().In(e.dates.Location())

	if m := fullDateRe.FindStringSubmatch(in); m != nil {
		e.setDay(p, atoi(m[3], now.Year()), atoi(m[2], 0), atoi(m[1], 0))
		return
	}

	if day, month, y, ok := numericDate(in); ok {
		year := now.Year()
		if y != "" {
			year = atoi(y, year)
			if len(y) == 2 {
				year += 2000
			}
		}
		e.setDay(p, year, month, day)
		return
	}

	if m := monthRe.FindStringSubmatch(in); m != nil {
		month := atoi(m[1], 0)
		year := atoi(m[2], now.Year())
		if month >= 1 && month <= 12 {
			from, to := e.dates.MonthRange(year, time.Month(month))
			p[Month] = month
			p[Year] = year
			p[Date] = from.Format(isoDate)
			p[DateFrom] = from.Format(time.RFC3339)
			p[DateTo] = to.Format(time.RFC3339)
			return
		}
	}

	if m := yearRe.FindStringSubmatch(in); m != nil {
		if year := atoi(m[1], 0); year >= 1990 && year <= 2100 {
			from, to := e.dates.YearRange(year)
			p[Year] = year
			p[Date] = from.Format(isoDate)
			p[DateFrom] = from.Format(time.RFC3339)
			p[DateTo] = to.Format(time.RFC3339)
			return
		}
	}

	if t, phrase, ok := e.dates.Find(in, now); ok {
		p[Date] = t.Format(isoDate)
		p[RelativeDate] = phrase
	}
}

// numericDate finds the first d/m[/y] or d-m[-y] date. Both separators must agree,
// and a dash pair that reads as an hour range ("từ 9-11h") is skipped.
func numericDate(in string) (day, month int, year string, ok bool) {
	for _, loc := range numericDateRe.FindAllStringSubmatchIndex(in, -1) {
		sep := in[loc[4]:loc[5]]
		end := loc[7]
		if loc[8] >= 0 {
			if in[loc[8]:loc[9]] != sep {
				continue
			}
			year = in[loc[10]:loc[11]]
			end = loc[11]
		} else {
			year = ""
		}
		if sep == "-" && isHourRange(in[:loc[2]], in[end:]) {
			continue
		}
		return atoi(in[loc[2]:loc[3]], 0), atoi(in[loc[6]:loc[7]], 0), year, true
	}
	return 0, 0, "", false
}

func isHourRange(before, after string) bool {
	if f := strings.Fields(before); len(f) > 0 {
		switch f[len(f)-1] {
		case "từ", "tu", "lúc", "luc":
			return true
		}
	}
	after = strings.TrimLeft(after, " ")
	if strings.HasPrefix(after, ":") {
		return true
	}
	for _, unit := range []string{"giờ", "gio", "h"} {
		if rest, found := strings.CutPrefix(after, unit); found {
			r, _ := utf8.DecodeRuneInString(rest)
			if rest == "" || !unicode.IsLetter(r) {
				return true
			}
		}
	}
	return false
}

func (e *Extractor) setDay(p intent.Params, year, month, day int) {
	t, ok := e.dates.Date(year, time.Month(month), day)
	if !ok {
		return
	}
	p[Date] = t.Format(isoDate)
}

func extractTime(in, folded string, p intent.Params) {
	for _, s := range []string{in, folded} {
		m := timeRangeRe.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		start, okStart := clock(m[1], m[2])
		end, okEnd := clock(m[3], m[4])
		if okStart && okEnd {
			p[StartTime] = start
			p[EndTime] = end
			return
		}
	}

	for _, s := range []string{in, folded} {
		if m := atTimeRe.FindStringSubmatch(s); m != nil {
			if start, ok := clock(m[1], m[2]); ok {
				p[StartTime] = start
				return
			}
		}
	}
}

func clock(hour, minute string) (string, bool) {
	h := atoi(hour, -1)
	mi := atoi(minute, 0)
	if h < 0 || h > 23 || mi < 0 || mi > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, mi), true
}

func extractAttendees(in, folded string, p intent.Params) {
	for _, s := range []string{in, folded} {
		if m := attendeeRe.FindStringSubmatch(s); m != nil {
			if n := atoi(m[1], 0); n > 0 {
				p[Attendees] = n
				return
			}
		}
	}
}

func extractPartOfDay(in string, p intent.Params) {
	words := strings.Fields(in)
	for _, w := range words {
		for _, pd := range partsOfDay {
			if w == pd.word {
				p[PartOfDay] = pd.value
				return
			}
		}
	}
}

// extractTables scans each declared parameter table in declaration order.
// Accented phrases are tried before their diacritic-free forms.
func extractTables(in, folded string, a intent.Action, p intent.Params) {
	if a.Invocation == nil || len(a.Invocation.Params) == 0 {
		return
	}

	names := make([]string, 0, len(a.Invocation.Params))
	for name := range a.Invocation.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		table := a.Invocation.Params[name].Keywords
		if v, ok := lookup(in, table, textmatch.Canonical); ok {
			p[name] = v
			continue
		}
		if v, ok := lookup(folded, table, textmatch.FoldedCanonical); ok {
			p[name] = v
		}
	}
}

// Lookup returns the canonical value of the first table entry whose phrase occurs in text.
func Lookup(text string, table intent.ValueKeywords) (string, bool) {
	return lookup(textmatch.Canonical(text), table, textmatch.Canonical)
}

func lookup(text string, table intent.ValueKeywords, norm func(string) string) (string, bool) {
	for _, entry := range table {
		for _, kw := range entry.Keywords {
			if k := norm(kw); k != "" && strings.Contains(text, k) {
				return entry.Value, true
			}
		}
	}
	return "", false
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

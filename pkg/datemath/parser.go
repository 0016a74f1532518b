package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ErrUnknownPhrase is returned when a relative phrase is not recognized.
var ErrUnknownPhrase = errors.New("unknown relative date phrase")

// Parser converts relative Vietnamese and English date phrases to absolute days.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// dayOffsets maps fixed phrases to a day offset from today.
var dayOffsets = map[string]int{
	"today":     0,
	"hôm nay":   0,
	"hom nay":   0,
	"bữa nay":   0,
	"tomorrow":  1,
	"ngày mai":  1,
	"ngay mai":  1,
	"mai":       1,
	"ngày mốt":  2,
	"ngày kia":  2,
	"mốt":       2,
	"yesterday": -1,
	"hôm qua":   -1,
	"hom qua":   -1,
	"tuần sau":  7,
	"tuần tới":  7,
	"tuan sau":  7,
	"next week": 7,
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
	"thứ hai":   time.Monday,
	"thứ ba":    time.Tuesday,
	"thứ tư":    time.Wednesday,
	"thứ năm":   time.Thursday,
	"thứ sáu":   time.Friday,
	"thứ bảy":   time.Saturday,
	"chủ nhật":  time.Sunday,
}

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	viLaterRe    = regexp.MustCompile(`^(\d+) (ngày|tuần|tháng) (?:nữa|tới)$`)
	viAfterRe    = regexp.MustCompile(`^sau (\d+) (ngày|tuần|tháng)$`)

	findDurationRe = regexp.MustCompile(`(?:^|\s)(?:(\d+)\s+(ngày|tuần|tháng)\s+(?:nữa|tới)|sau\s+(\d+)\s+(ngày|tuần|tháng))(?:\s|$)`)
)

// Parse converts a relative date string to the start of the matching day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	if off, ok := dayOffsets[relative]; ok {
		return p.startOfDay(baseTime.AddDate(0, 0, off)), nil
	}

	if m := inDurationRe.FindStringSubmatch(relative); m != nil {
		return p.addUnit(baseTime, m[1], m[2])
	}
	if m := viLaterRe.FindStringSubmatch(relative); m != nil {
		return p.addUnit(baseTime, m[1], m[2])
	}
	if m := viAfterRe.FindStringSubmatch(relative); m != nil {
		return p.addUnit(baseTime, m[1], m[2])
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(strings.TrimPrefix(relative, "next "), baseTime)
	}
	if _, ok := weekdays[relative]; ok {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnknownPhrase, relative)
}

// Find scans free text for the first relative date phrase and resolves it.
// It returns the matched phrase as well.
func (p *Parser) Find(text string, baseTime time.Time) (time.Time, string, bool) {
	lower := strings.ToLower(text)

	if m := findDurationRe.FindStringSubmatch(lower); m != nil {
		amount, unit := m[1], m[2]
		if amount == "" {
			amount, unit = m[3], m[4]
		}
		if t, err := p.addUnit(baseTime, amount, unit); err == nil {
			return t, strings.TrimSpace(m[0]), true
		}
	}

	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r)
	})
	for i := range words {
		// prefer two-word phrases so "ngày mai" wins over "mai"
		if i+1 < len(words) {
			phrase := words[i] + " " + words[i+1]
			if t, err := p.Parse(phrase, baseTime); err == nil {
				return t, phrase, true
			}
		}
		if _, ok := dayOffsets[words[i]]; ok {
			t, _ := p.Parse(words[i], baseTime)
			return t, words[i], true
		}
	}
	return time.Time{}, "", false
}

func (p *Parser) addUnit(baseTime time.Time, amountStr, unit string) (time.Time, error) {
	amount, err := strconv.Atoi(amountStr)
	if err != nil {
		return baseTime, fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}

	switch unit {
	case "day", "days", "ngày":
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case "week", "weeks", "tuần":
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case "month", "months", "tháng":
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday returns the next occurrence of the weekday, strictly after baseTime's day.
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// Date builds midnight of a calendar day, rejecting days that do not exist (31/2).
func (p *Parser) Date(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

// MonthRange returns the first and last instant of a month.
func (p *Parser) MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, p.location)
	return start, p.EndOfDay(start.AddDate(0, 1, -1))
}

// YearRange returns the first and last instant of a year.
func (p *Parser) YearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, p.location)
	return start, p.EndOfDay(time.Date(year, time.December, 31, 0, 0, 0, 0, p.location))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

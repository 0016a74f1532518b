package datemath_test

import (
	"errors"
	"testing"
	"time"

	"smartfactory-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Hôm nay", relative: "hôm nay", want: startOfBase},
		{name: "Tomorrow", relative: "tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Ngày mai", relative: "Ngày mai", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Ngày mốt", relative: "ngày mốt", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Hôm qua", relative: "hôm qua", want: startOfBase.AddDate(0, 0, -1)},
		{name: "Tuần sau", relative: "tuần sau", want: startOfBase.AddDate(0, 0, 7)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "3 ngày nữa", relative: "3 ngày nữa", want: startOfBase.AddDate(0, 0, 3)},
		{name: "Sau 2 tuần", relative: "sau 2 tuần", want: startOfBase.AddDate(0, 0, 14)},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Thứ sáu (from Wed)", relative: "thứ sáu", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Invalid duration pattern", relative: "in a few days", want: baseTime, wantErr: true},
		{name: "Unknown phrase", relative: "some random day", want: baseTime, wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseUnknownIsSentinel(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	_, err := parser.Parse("bao giờ cũng được", time.Now())
	if !errors.Is(err, datemath.ErrUnknownPhrase) {
		t.Errorf("expected ErrUnknownPhrase, got %v", err)
	}
}

func TestFind(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		text       string
		wantOK     bool
		want       time.Time
		wantPhrase string
	}{
		{text: "đặt phòng họp 10 người sáng mai", wantOK: true, want: start.AddDate(0, 0, 1), wantPhrase: "mai"},
		{text: "họp ngày mai lúc 9h", wantOK: true, want: start.AddDate(0, 0, 1), wantPhrase: "ngày mai"},
		{text: "hủy lịch họp hôm nay", wantOK: true, want: start, wantPhrase: "hôm nay"},
		{text: "nhắc tôi 3 ngày nữa", wantOK: true, want: start.AddDate(0, 0, 3), wantPhrase: "3 ngày nữa"},
		{text: "đặt phòng ngày 15 tháng 3", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, phrase, ok := parser.Find(tt.text, base)
			if ok != tt.wantOK {
				t.Fatalf("Find ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.Equal(tt.want) || phrase != tt.wantPhrase {
				t.Errorf("Find = %v %q, want %v %q", got, phrase, tt.want, tt.wantPhrase)
			}
		})
	}
}

func TestDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	if _, ok := parser.Date(2026, time.February, 31); ok {
		t.Error("31/2 must be rejected")
	}
	got, ok := parser.Date(2026, time.March, 15)
	if !ok || got.Format("2006-01-02") != "2026-03-15" {
		t.Errorf("unexpected date %v %v", got, ok)
	}
}

func TestRanges(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	from, to := parser.MonthRange(2024, time.February)
	if !from.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) || !to.Equal(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("MonthRange = %v..%v", from, to)
	}

	from, to = parser.YearRange(2025)
	if !from.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) || !to.Equal(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("YearRange = %v..%v", from, to)
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

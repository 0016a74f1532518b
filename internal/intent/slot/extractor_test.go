package slot_test

import (
	"reflect"
	"testing"
	"time"

	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/intent/registry"
	"smartfactory-assistant/internal/intent/slot"
	"smartfactory-assistant/pkg/datemath"
)

func newExtractor(t *testing.T) (*slot.Extractor, *registry.Registry) {
	t.Helper()
	dates, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	// Sunday 18 Oct 2026, 10:00 local.
	now := time.Date(2026, 10, 18, 10, 0, 0, 0, dates.Location())
	reg, err := registry.Default()
	if err != nil {
		t.Fatalf("registry.Default: %v", err)
	}
	return slot.New(dates, slot.WithClock(func() time.Time { return now })), reg
}

func action(t *testing.T, reg *registry.Registry, id string) intent.Action {
	t.Helper()
	a, ok := reg.Get(id)
	if !ok {
		t.Fatalf("action %s missing", id)
	}
	return a
}

func TestExtractDates(t *testing.T) {
	ex, reg := newExtractor(t)
	booking := action(t, reg, "room_booking_create")

	tests := []struct {
		name  string
		input string
		want  intent.Params
	}{
		{
			name:  "full date with year",
			input: "đặt phòng ngày 15 tháng 3 năm 2026",
			want:  intent.Params{"date": "2026-03-15"},
		},
		{
			name:  "full date defaults to current year",
			input: "đặt phòng ngày 5 tháng 11",
			want:  intent.Params{"date": "2026-11-05"},
		},
		{
			name:  "numeric date",
			input: "đặt phòng 20/10",
			want:  intent.Params{"date": "2026-10-20"},
		},
		{
			name:  "numeric date with short year",
			input: "đặt phòng 20/10/27",
			want:  intent.Params{"date": "2027-10-20"},
		},
		{
			name:  "dash date with year",
			input: "đặt phòng 15-03-2026",
			want:  intent.Params{"date": "2026-03-15"},
		},
		{
			name:  "dash date without year",
			input: "đặt phòng ngày 20-10",
			want:  intent.Params{"date": "2026-10-20"},
		},
		{
			name:  "year inside a numeric date is not a year range",
			input: "đặt phòng 15/03/2026",
			want:  intent.Params{"date": "2026-03-15"},
		},
		{
			name:  "mixed separators are not a date",
			input: "đặt phòng 15-03/2026",
			want:  intent.Params{"year": 2026, "date": "2026-01-01", "dateFrom": "2026-01-01T00:00:00+07:00", "dateTo": "2026-12-31T23:59:59+07:00"},
		},
		{
			name:  "hour range is not a dash date",
			input: "đặt phòng từ 9-11h ngày mai",
			want:  intent.Params{"startTime": "09:00", "endTime": "11:00", "date": "2026-10-19", "relativeDate": "ngày mai"},
		},
		{
			name:  "impossible date is omitted",
			input: "đặt phòng 31/2/2026",
			want:  intent.Params{},
		},
		{
			name:  "relative date",
			input: "đặt phòng ngày mai",
			want:  intent.Params{"date": "2026-10-19", "relativeDate": "ngày mai"},
		},
		{
			name:  "weekday",
			input: "đặt phòng thứ hai",
			want:  intent.Params{"date": "2026-10-19", "relativeDate": "thứ hai"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(tt.input, booking)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractPeriods(t *testing.T) {
	ex, reg := newExtractor(t)
	list := action(t, reg, "incident_list")

	tests := []struct {
		name  string
		input string
		want  intent.Params
	}{
		{
			name:  "month of current year",
			input: "sự cố tháng 3",
			want: intent.Params{
				"month":    3,
				"year":     2026,
				"date":     "2026-03-01",
				"dateFrom": "2026-03-01T00:00:00+07:00",
				"dateTo":   "2026-03-31T23:59:59+07:00",
			},
		},
		{
			name:  "abbreviated month with year",
			input: "sự cố t2/2024",
			want: intent.Params{
				"month":    2,
				"year":     2024,
				"date":     "2024-02-01",
				"dateFrom": "2024-02-01T00:00:00+07:00",
				"dateTo":   "2024-02-29T23:59:59+07:00",
			},
		},
		{
			name:  "year",
			input: "sự cố năm 2025",
			want: intent.Params{
				"year":     2025,
				"date":     "2025-01-01",
				"dateFrom": "2025-01-01T00:00:00+07:00",
				"dateTo":   "2025-12-31T23:59:59+07:00",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(tt.input, list)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractNumberBeforeWordIsNotAMonth(t *testing.T) {
	ex, reg := newExtractor(t)
	got := ex.Extract("đặt 10 người", action(t, reg, "room_booking_create"))
	if _, ok := got["month"]; ok {
		t.Errorf("unexpected month in %v", got)
	}
	if got["attendees"] != 10 {
		t.Errorf("attendees = %v, want 10", got["attendees"])
	}
}

func TestExtractBookingSlots(t *testing.T) {
	ex, reg := newExtractor(t)
	booking := action(t, reg, "room_booking_create")

	tests := []struct {
		name  string
		input string
		want  intent.Params
	}{
		{
			name:  "time range with hours",
			input: "đặt phòng họp từ 9h đến 11h30",
			want:  intent.Params{"startTime": "09:00", "endTime": "11:30", "meetingType": "meeting"},
		},
		{
			name:  "time range without diacritics",
			input: "dat phong tu 14:00 den 16:00",
			want:  intent.Params{"startTime": "14:00", "endTime": "16:00"},
		},
		{
			name:  "invalid range is dropped",
			input: "đặt phòng từ 25h đến 26h",
			want:  intent.Params{},
		},
		{
			name:  "single start time",
			input: "đặt phòng đào tạo lúc 8h",
			want:  intent.Params{"startTime": "08:00", "meetingType": "training"},
		},
		{
			name:  "everything",
			input: "đặt phòng họp 10 người sáng mai",
			want: intent.Params{
				"attendees":    10,
				"date":         "2026-10-19",
				"relativeDate": "mai",
				"partOfDay":    "morning",
				"meetingType":  "meeting",
			},
		},
		{
			name:  "table order wins over later entries",
			input: "đặt phòng phỏng vấn họp",
			want:  intent.Params{"meetingType": "interview"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(tt.input, booking)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractTables(t *testing.T) {
	ex, reg := newExtractor(t)
	list := action(t, reg, "incident_list")

	tests := []struct {
		input string
		want  intent.Params
	}{
		{"xem sự cố đang xử lý khẩn cấp", intent.Params{"status": "in_progress", "priority": "critical"}},
		{"su co dang xu ly", intent.Params{"status": "in_progress"}},
		{"sự cố đã đóng", intent.Params{"status": "closed"}},
		{"danh sách sự cố", intent.Params{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ex.Extract(tt.input, list)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractWithoutTables(t *testing.T) {
	ex, _ := newExtractor(t)
	got := ex.Extract("mở trang tin tức", intent.Action{ID: "nav_news"})
	if len(got) != 0 {
		t.Errorf("expected no slots, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	table := intent.ValueKeywords{
		{Value: "safety", Keywords: []string{"an toàn"}},
		{Value: "quality", Keywords: []string{"chất lượng"}},
	}
	if v, ok := slot.Lookup("Cải tiến AN TOÀN lao động", table); !ok || v != "safety" {
		t.Errorf("Lookup = %q %v", v, ok)
	}
	if _, ok := slot.Lookup("không liên quan", table); ok {
		t.Error("expected no match")
	}
}

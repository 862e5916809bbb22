package scheduling

import (
	"errors"
	"testing"
	"time"
)

// 2025-01-06 is a Monday.
func date(day int) time.Time {
	return time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC)
}

func TestCalendarConfig_ShouldSkip(t *testing.T) {
	cfg := CalendarConfig{
		HiddenWeekdays: []int{0, 6},
		Holidays:       []string{"2025-01-08"},
	}

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"monday is open", date(6), false},
		{"wednesday holiday", date(8), true},
		{"saturday hidden", date(11), true},
		{"sunday hidden", date(12), true},
		{"thursday open", date(9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.ShouldSkip(tt.d); got != tt.want {
				t.Errorf("ShouldSkip(%s) = %v, want %v", tt.d.Format(DateLayout), got, tt.want)
			}
		})
	}
}

func TestCalendarConfig_NextValidDay(t *testing.T) {
	cfg := CalendarConfig{
		HiddenWeekdays: []int{0, 6},
		Holidays:       []string{"2025-01-13", "2025-01-14"},
	}

	// Friday the 10th: weekend is hidden and Mon+Tue are holidays, so the
	// next open day is Wednesday the 15th.
	got := cfg.NextValidDay(date(10))
	if !got.Equal(date(15)) {
		t.Errorf("NextValidDay(Fri 10th) = %s, want 2025-01-15", got.Format(DateLayout))
	}
}

func TestCalendarConfig_NextValidDayProperties(t *testing.T) {
	cfg := CalendarConfig{
		HiddenWeekdays: []int{0, 3, 6},
		Holidays:       []string{"2025-01-07", "2025-01-09", "2025-01-10"},
	}

	for day := 1; day <= 25; day++ {
		start := date(day)
		next := cfg.NextValidDay(start)
		if !next.After(start) {
			t.Errorf("NextValidDay(%s) = %s is not strictly after the input", start.Format(DateLayout), next.Format(DateLayout))
		}
		if cfg.ShouldSkip(next) {
			t.Errorf("NextValidDay(%s) returned a skipped day %s", start.Format(DateLayout), next.Format(DateLayout))
		}
	}
}

func TestCalendarConfig_Classify(t *testing.T) {
	cfg := CalendarConfig{
		HiddenWeekdays:  []int{0, 6},
		HalfDayWeekdays: []int{3},
		Holidays:        []string{"2025-01-09"},
	}
	today := date(8)

	tests := []struct {
		name string
		d    time.Time
		want DayClassification
	}{
		{"past monday", date(6), DayClassification{Past: true}},
		{"today wednesday half day", date(8), DayClassification{HalfDay: true}},
		{"thursday holiday", date(9), DayClassification{Holiday: true}},
		{"saturday hidden", date(11), DayClassification{Hidden: true}},
		{"open friday", date(10), DayClassification{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.Classify(tt.d, today)
			if got != tt.want {
				t.Errorf("Classify(%s) = %+v, want %+v", tt.d.Format(DateLayout), got, tt.want)
			}
			// Deterministic: a second call must agree with the first.
			if again := cfg.Classify(tt.d, today); again != got {
				t.Errorf("Classify(%s) is not idempotent: %+v then %+v", tt.d.Format(DateLayout), got, again)
			}
		})
	}
}

func TestCalendarConfig_Validate(t *testing.T) {
	open := CalendarConfig{HiddenWeekdays: []int{0, 6}}
	if err := open.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	closed := CalendarConfig{HiddenWeekdays: []int{0, 1, 2, 3, 4, 5, 6}}
	if err := closed.Validate(); !errors.Is(err, ErrCalendarFullyClosed) {
		t.Errorf("expected ErrCalendarFullyClosed, got %v", err)
	}

	// Duplicates of a partial set must not count as a full week.
	dup := CalendarConfig{HiddenWeekdays: []int{0, 0, 6, 6, 6, 6, 6}}
	if err := dup.Validate(); err != nil {
		t.Errorf("expected valid config with duplicate entries, got %v", err)
	}
}

func TestCalendarConfig_WithHoliday(t *testing.T) {
	cfg := CalendarConfig{Holidays: []string{"2025-01-09"}}

	added := cfg.WithHoliday(date(10))
	if !added.IsHoliday(date(10)) {
		t.Error("WithHoliday did not add the date")
	}
	if len(cfg.Holidays) != 1 {
		t.Error("WithHoliday mutated the receiver")
	}

	same := added.WithHoliday(date(10))
	if len(same.Holidays) != len(added.Holidays) {
		t.Error("adding an existing holiday should be a no-op")
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("PHT", 8*3600)
	stamp := time.Date(2025, time.January, 6, 23, 45, 0, 0, loc)
	got := DateOnly(stamp)
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("DateOnly kept clock fields: %v", got)
	}
	if got.Day() != 6 {
		t.Errorf("DateOnly changed the calendar day: %v", got)
	}
}

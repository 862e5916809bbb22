package scheduling

import (
	"errors"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ErrCalendarFullyClosed is returned when a calendar config hides every
// weekday, which would make the forward day walk non-terminating.
var ErrCalendarFullyClosed = errors.New("calendar config hides all seven weekdays")

// CalendarConfig is the explicit calendar state consulted by both slot
// rendering and redistribution. Both paths must agree on what "open" means,
// so all methods are pure.
type CalendarConfig struct {
	// HiddenWeekdays are fully closed weekdays, 0=Sunday .. 6=Saturday.
	HiddenWeekdays []int
	// HalfDayWeekdays offer morning slots only.
	HalfDayWeekdays []int
	// Holidays are explicit closed dates in YYYY-MM-DD form.
	Holidays []string
}

// DayClassification describes how a single calendar date is treated.
type DayClassification struct {
	Hidden  bool `json:"hidden"`
	Holiday bool `json:"holiday"`
	HalfDay bool `json:"half_day"`
	Past    bool `json:"past"`
}

// Validate rejects configs that would strand the redistribution walk.
func (c CalendarConfig) Validate() error {
	if len(c.HiddenWeekdays) < 7 {
		return nil
	}
	seen := make(map[int]bool, 7)
	for _, d := range c.HiddenWeekdays {
		if d >= 0 && d <= 6 {
			seen[d] = true
		}
	}
	if len(seen) == 7 {
		return ErrCalendarFullyClosed
	}
	return nil
}

func (c CalendarConfig) IsHiddenWeekday(date time.Time) bool {
	return containsInt(c.HiddenWeekdays, int(date.Weekday()))
}

func (c CalendarConfig) IsHalfDay(date time.Time) bool {
	return containsInt(c.HalfDayWeekdays, int(date.Weekday()))
}

func (c CalendarConfig) IsHoliday(date time.Time) bool {
	key := date.Format(DateLayout)
	for _, h := range c.Holidays {
		if h == key {
			return true
		}
	}
	return false
}

// ShouldSkip reports whether the date is unusable for appointments:
// a hidden weekday or an explicit holiday.
func (c CalendarConfig) ShouldSkip(date time.Time) bool {
	return c.IsHiddenWeekday(date) || c.IsHoliday(date)
}

// NextValidDay returns the first non-skipped day strictly after date.
// Callers must Validate the config first; a fully hidden week never
// terminates here.
func (c CalendarConfig) NextValidDay(date time.Time) time.Time {
	next := DateOnly(date).AddDate(0, 0, 1)
	for c.ShouldSkip(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Classify resolves the openness of date relative to today. Past is
// evaluated at local-date granularity: strictly before today's date.
func (c CalendarConfig) Classify(date, today time.Time) DayClassification {
	return DayClassification{
		Hidden:  c.IsHiddenWeekday(date),
		Holiday: c.IsHoliday(date),
		HalfDay: c.IsHalfDay(date),
		Past:    DateOnly(date).Before(DateOnly(today)),
	}
}

// WithHoliday returns a copy of the config with date added to the holiday
// set. Adding an existing holiday is a no-op.
func (c CalendarConfig) WithHoliday(date time.Time) CalendarConfig {
	if c.IsHoliday(date) {
		return c
	}
	out := c
	out.Holidays = append(append([]string(nil), c.Holidays...), date.Format(DateLayout))
	return out
}

// DateOnly strips the clock portion, normalizing to midnight UTC so date
// comparisons are stable regardless of the zone a time was parsed in.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

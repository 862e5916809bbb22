package scheduling

import (
	"fmt"
	"testing"
	"time"
)

func weekendsHidden() CalendarConfig {
	return CalendarConfig{HiddenWeekdays: []int{0, 6}}
}

func TestPlanAssignments_HolidayScenario(t *testing.T) {
	// Friday 2025-01-10 marked a holiday: its five appointments move to the
	// next open day (Monday the 13th), 24 minutes apart from 08:00.
	cfg := weekendsHidden().WithHoliday(date(10))
	target := cfg.NextValidDay(date(10))

	if !target.Equal(date(13)) {
		t.Fatalf("target day = %s, want 2025-01-13", target.Format(DateLayout))
	}

	got := PlanAssignments(cfg, target, 5, 20)
	wantStarts := []string{"08:00:00", "08:24:00", "08:48:00", "09:12:00", "09:36:00"}

	if len(got) != 5 {
		t.Fatalf("expected 5 assignments, got %d", len(got))
	}
	for i, a := range got {
		if !a.Date.Equal(target) {
			t.Errorf("assignment %d on %s, want %s", i, a.Date.Format(DateLayout), target.Format(DateLayout))
		}
		if a.Start != wantStarts[i] {
			t.Errorf("assignment %d start = %s, want %s", i, a.Start, wantStarts[i])
		}
		if a.Start >= "12:00:00" && a.Start < "13:00:00" {
			t.Errorf("assignment %d starts inside lunch: %s", i, a.Start)
		}
	}
}

func TestPlanAssignments_NoDuplicateSlots(t *testing.T) {
	cfg := CalendarConfig{HiddenWeekdays: []int{0, 6}, HalfDayWeekdays: []int{5}}

	for _, ceiling := range []int{3, 7, 20, 48} {
		got := PlanAssignments(cfg, date(6), 60, ceiling)
		seen := make(map[string]bool, len(got))
		for _, a := range got {
			key := a.Date.Format(DateLayout) + " " + a.Start
			if seen[key] {
				t.Errorf("ceiling %d: duplicate slot %s", ceiling, key)
			}
			seen[key] = true
		}
	}
}

func TestPlanAssignments_RespectsDayBounds(t *testing.T) {
	cfg := CalendarConfig{HiddenWeekdays: []int{0, 6}, HalfDayWeekdays: []int{2}}

	for _, ceiling := range []int{5, 12, 20, 48} {
		for _, a := range PlanAssignments(cfg, date(6), 80, ceiling) {
			if a.Start < "08:00:00" {
				t.Errorf("ceiling %d: slot before opening: %s %s", ceiling, a.Date.Format(DateLayout), a.Start)
			}
			if cfg.ShouldSkip(a.Date) {
				t.Errorf("ceiling %d: assignment landed on a skipped day %s", ceiling, a.Date.Format(DateLayout))
			}
			if cfg.IsHalfDay(a.Date) {
				if a.Start >= "12:00:00" {
					t.Errorf("ceiling %d: half-day slot past noon: %s %s", ceiling, a.Date.Format(DateLayout), a.Start)
				}
			} else if a.Start >= "12:00:00" && a.Start < "13:00:00" {
				t.Errorf("ceiling %d: slot inside lunch: %s %s", ceiling, a.Date.Format(DateLayout), a.Start)
			}
		}
	}
}

func TestPlanAssignments_PreservesOrder(t *testing.T) {
	cfg := weekendsHidden()
	got := PlanAssignments(cfg, date(6), 50, 10)

	if len(got) != 50 {
		t.Fatalf("expected 50 assignments, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		prev := got[i-1].Date.Format(DateLayout) + " " + got[i-1].Start
		cur := got[i].Date.Format(DateLayout) + " " + got[i].Start
		if cur <= prev {
			t.Errorf("assignment %d (%s) is not after %d (%s)", i, cur, i-1, prev)
		}
	}
}

func TestPlanAssignments_HalfDayTruncation(t *testing.T) {
	// Mondays are half days: only ten 24-minute morning slots fit, so the
	// eleventh appointment spills to Tuesday at 08:00.
	cfg := CalendarConfig{HiddenWeekdays: []int{0, 6}, HalfDayWeekdays: []int{1}}
	got := PlanAssignments(cfg, date(6), 11, 20)

	for i := 0; i < 10; i++ {
		if !got[i].Date.Equal(date(6)) {
			t.Errorf("assignment %d on %s, want Monday the 6th", i, got[i].Date.Format(DateLayout))
		}
	}
	if last := got[9]; last.Start != "11:36:00" {
		t.Errorf("last Monday slot = %s, want 11:36:00", last.Start)
	}
	if spill := got[10]; !spill.Date.Equal(date(7)) || spill.Start != "08:00:00" {
		t.Errorf("spill = %s %s, want Tuesday 08:00:00", spill.Date.Format(DateLayout), spill.Start)
	}
}

func TestPlanAssignments_CascadesAcrossDays(t *testing.T) {
	// Ceiling 2 means 240-minute slots and two appointments per day; five
	// appointments need three business days.
	cfg := weekendsHidden()
	got := PlanAssignments(cfg, date(6), 5, 2)

	byDay := make(map[string]int)
	for _, a := range got {
		byDay[a.Date.Format(DateLayout)]++
	}
	for day, n := range byDay {
		if n > 2 {
			t.Errorf("%s holds %d appointments, ceiling is 2", day, n)
		}
	}
	if len(byDay) != 3 {
		t.Errorf("expected assignments spread over 3 days, got %d", len(byDay))
	}
}

func TestPlanAssignments_LunchJumpRealignsIndex(t *testing.T) {
	// With 24-minute slots a full day's eleventh slot would start at 12:00;
	// the cursor must jump it to 13:00 and continue from there. The index is
	// recomputed from minutes since opening (floor(300/24) = 12, next start
	// 08:00 + 13*24min), so the afternoon grid carries the 12-minute lunch
	// remainder as an offset: 13:12, not 13:24.
	cfg := weekendsHidden()
	got := PlanAssignments(cfg, date(6), 12, 20)

	if got[10].Start != "13:00:00" {
		t.Errorf("post-lunch slot starts at %s, want 13:00:00", got[10].Start)
	}
	if got[11].Start != "13:12:00" {
		t.Errorf("slot after lunch jump starts at %s, want 13:12:00", got[11].Start)
	}
}

func TestPlanAssignments_Degenerate(t *testing.T) {
	cfg := weekendsHidden()

	if got := PlanAssignments(cfg, date(6), 0, 20); got != nil {
		t.Errorf("zero queue should plan nothing, got %d", len(got))
	}

	// A non-positive ceiling clamps to one appointment per day.
	got := PlanAssignments(cfg, date(6), 2, 0)
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(got))
	}
	if got[0].Date.Equal(got[1].Date) {
		t.Error("clamped ceiling of 1 should place one appointment per day")
	}
}

func ExamplePlanAssignments() {
	cfg := CalendarConfig{HiddenWeekdays: []int{0, 6}}
	start := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	for _, a := range PlanAssignments(cfg, start, 3, 20) {
		fmt.Println(a.Date.Format("2006-01-02"), a.Start, a.End)
	}
	// Output:
	// 2025-01-06 08:00:00 08:24:00
	// 2025-01-06 08:24:00 08:48:00
	// 2025-01-06 08:48:00 09:12:00
}

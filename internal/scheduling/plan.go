package scheduling

import "time"

// Assignment is the slot computed for one queued appointment during
// redistribution.
type Assignment struct {
	Date  time.Time
	Start string
	End   string
}

// PlanAssignments walks forward from startDate and produces n sequential
// slot assignments, one per queued appointment, in queue order. The cursor
// advances to the next valid day whenever the current day reaches its
// ceiling (the lower of the daily appointment ceiling and the number of
// slots the day physically holds), and slot times never land inside the
// lunch hour on a full day or past noon on a half day.
//
// startDate must itself be a valid (non-skipped) day; callers obtain it via
// cfg.NextValidDay.
func PlanAssignments(cfg CalendarConfig, startDate time.Time, n, dailyCeiling int) []Assignment {
	if n <= 0 {
		return nil
	}
	if dailyCeiling < 1 {
		dailyCeiling = 1
	}

	duration := SlotDuration(dailyCeiling)
	assignments := make([]Assignment, 0, n)

	currentDate := DateOnly(startDate)
	slotIndex := 0
	onDay := 0
	maxToday := MaxSlotsForDay(duration, cfg.IsHalfDay(currentDate))

	advance := func() {
		currentDate = cfg.NextValidDay(currentDate)
		slotIndex = 0
		onDay = 0
		maxToday = MaxSlotsForDay(duration, cfg.IsHalfDay(currentDate))
	}

	for i := 0; i < n; i++ {
		for onDay >= dailyCeiling || onDay >= maxToday {
			advance()
		}

		minutes := MorningStartMinutes + slotIndex*duration

		// A half day ends at noon; spill rolls the whole cursor forward.
		if cfg.IsHalfDay(currentDate) && minutes >= MorningEndMinutes {
			advance()
			minutes = MorningStartMinutes
		}

		// Full days jump the lunch hour and realign the slot index to the
		// afternoon session.
		if !cfg.IsHalfDay(currentDate) && minutes >= MorningEndMinutes && minutes < AfternoonStartMinutes {
			minutes = AfternoonStartMinutes
			slotIndex = (minutes - MorningStartMinutes) / duration
		}

		assignments = append(assignments, Assignment{
			Date:  currentDate,
			Start: ClockTime(minutes),
			End:   ClockTime(minutes + duration),
		})
		slotIndex++
		onDay++
	}

	return assignments
}

package scheduling

import "fmt"

// Clinic operating hours: a morning session from 08:00 to 12:00 and an
// afternoon session from 13:00 to 17:00. The 12:00-13:00 lunch hour is
// never bookable.
const (
	MorningStartMinutes   = 8 * 60
	MorningEndMinutes     = 12 * 60
	AfternoonStartMinutes = 13 * 60
	AfternoonEndMinutes   = 17 * 60

	// HalfDayMinutes is the bookable span of a morning-only day.
	HalfDayMinutes = MorningEndMinutes - MorningStartMinutes

	// FullDayMinutes is the bookable span of a regular day (lunch excluded).
	FullDayMinutes = HalfDayMinutes + (AfternoonEndMinutes - AfternoonStartMinutes)

	// MinSlotDurationMinutes is the floor on slot width regardless of how
	// high the daily ceiling is configured.
	MinSlotDurationMinutes = 10
)

// Slot is a bookable time window within a single day. Start and End are
// HH:MM:SS clock strings; zero-padding keeps them lexicographically
// comparable, which the capacity queries rely on.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// SlotDuration derives the slot width in minutes from the per-day
// appointment ceiling: the 480 bookable minutes are split evenly across the
// permitted appointments, floored at 10 minutes. A ceiling below 1 is
// treated as 1.
func SlotDuration(dailyCeiling int) int {
	if dailyCeiling < 1 {
		dailyCeiling = 1
	}
	d := FullDayMinutes / dailyCeiling
	if d < MinSlotDurationMinutes {
		d = MinSlotDurationMinutes
	}
	return d
}

// ComputeSlotGrid tiles the morning and afternoon sessions with sequential
// slots of the width derived from dailyCeiling. The final slot of each
// session is truncated to the session boundary when the width does not
// divide the session evenly.
func ComputeSlotGrid(dailyCeiling int) []Slot {
	d := SlotDuration(dailyCeiling)
	slots := tile(MorningStartMinutes, MorningEndMinutes, d)
	return append(slots, tile(AfternoonStartMinutes, AfternoonEndMinutes, d)...)
}

// MorningSlotGrid returns only the morning tiling, used for half days.
func MorningSlotGrid(dailyCeiling int) []Slot {
	return tile(MorningStartMinutes, MorningEndMinutes, SlotDuration(dailyCeiling))
}

// MaxSlotsForDay is the number of whole slots a day can hold: 240 bookable
// minutes on a half day, 480 otherwise.
func MaxSlotsForDay(slotDuration int, halfDay bool) int {
	if halfDay {
		return HalfDayMinutes / slotDuration
	}
	return FullDayMinutes / slotDuration
}

func tile(startMinutes, endMinutes, duration int) []Slot {
	var slots []Slot
	for cur := startMinutes; cur < endMinutes; {
		end := cur + duration
		if end > endMinutes {
			end = endMinutes
		}
		slots = append(slots, Slot{
			Start: ClockTime(cur),
			End:   ClockTime(end),
			Label: clockLabel(cur),
		})
		cur = end
	}
	return slots
}

// ClockTime renders minutes-from-midnight as a HH:MM:SS string.
func ClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// clockLabel renders minutes-from-midnight in 12-hour display form.
func clockLabel(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

package scheduling

import "testing"

func TestSlotDuration(t *testing.T) {
	tests := []struct {
		name    string
		ceiling int
		want    int
	}{
		{"twenty per day", 20, 24},
		{"forty eight hits the floor", 48, 10},
		{"hundred clamps to minimum", 100, 10},
		{"single appointment", 1, 480},
		{"zero treated as one", 0, 480},
		{"negative treated as one", -5, 480},
		{"uneven division floors", 7, 68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlotDuration(tt.ceiling); got != tt.want {
				t.Errorf("SlotDuration(%d) = %d, want %d", tt.ceiling, got, tt.want)
			}
		})
	}
}

func TestComputeSlotGrid_SlotCount(t *testing.T) {
	ceilDiv := func(a, b int) int { return (a + b - 1) / b }

	for _, ceiling := range []int{1, 2, 7, 10, 20, 30, 48, 96} {
		d := SlotDuration(ceiling)
		want := ceilDiv(HalfDayMinutes, d) * 2
		got := len(ComputeSlotGrid(ceiling))
		if got != want {
			t.Errorf("ceiling %d (duration %d): got %d slots, want %d", ceiling, d, got, want)
		}
	}
}

func TestComputeSlotGrid_TwentyPerDay(t *testing.T) {
	slots := ComputeSlotGrid(20)

	if len(slots) != 20 {
		t.Fatalf("expected 20 slots, got %d", len(slots))
	}
	if slots[0].Start != "08:00:00" || slots[0].End != "08:24:00" {
		t.Errorf("first morning slot = %s-%s, want 08:00:00-08:24:00", slots[0].Start, slots[0].End)
	}
	if slots[9].Start != "11:36:00" || slots[9].End != "12:00:00" {
		t.Errorf("last morning slot = %s-%s, want 11:36:00-12:00:00", slots[9].Start, slots[9].End)
	}
	if slots[10].Start != "13:00:00" || slots[10].End != "13:24:00" {
		t.Errorf("first afternoon slot = %s-%s, want 13:00:00-13:24:00", slots[10].Start, slots[10].End)
	}
	if slots[19].Start != "16:36:00" || slots[19].End != "17:00:00" {
		t.Errorf("last afternoon slot = %s-%s, want 16:36:00-17:00:00", slots[19].Start, slots[19].End)
	}
	if slots[0].Label != "8:00 AM" {
		t.Errorf("first label = %q, want %q", slots[0].Label, "8:00 AM")
	}
	if slots[10].Label != "1:00 PM" {
		t.Errorf("first afternoon label = %q, want %q", slots[10].Label, "1:00 PM")
	}
}

func TestComputeSlotGrid_ContiguousNonOverlapping(t *testing.T) {
	for _, ceiling := range []int{1, 3, 7, 20, 48} {
		slots := ComputeSlotGrid(ceiling)

		for i, s := range slots {
			if s.Start >= s.End {
				t.Errorf("ceiling %d slot %d: start %s not before end %s", ceiling, i, s.Start, s.End)
			}
		}

		// Within each half-day run, every slot must begin where the previous
		// one ended. The only allowed discontinuity is the lunch jump.
		for i := 1; i < len(slots); i++ {
			if slots[i-1].End == "12:00:00" && slots[i].Start == "13:00:00" {
				continue
			}
			if slots[i].Start != slots[i-1].End {
				t.Errorf("ceiling %d: gap between %s and %s", ceiling, slots[i-1].End, slots[i].Start)
			}
		}

		// No slot may touch the lunch hour.
		for _, s := range slots {
			if s.Start >= "12:00:00" && s.Start < "13:00:00" {
				t.Errorf("ceiling %d: slot starts inside lunch: %s", ceiling, s.Start)
			}
			if s.End > "12:00:00" && s.End <= "13:00:00" && s.Start < "12:00:00" {
				if s.End != "12:00:00" {
					t.Errorf("ceiling %d: slot crosses into lunch: %s-%s", ceiling, s.Start, s.End)
				}
			}
		}
	}
}

func TestComputeSlotGrid_TruncatedTail(t *testing.T) {
	// Ceiling 7 gives 68-minute slots; 240/68 leaves a 36-minute remainder
	// that must be kept as a shorter final slot.
	slots := ComputeSlotGrid(7)
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(slots))
	}
	if slots[3].Start != "11:24:00" || slots[3].End != "12:00:00" {
		t.Errorf("truncated morning tail = %s-%s, want 11:24:00-12:00:00", slots[3].Start, slots[3].End)
	}
	if slots[7].Start != "16:24:00" || slots[7].End != "17:00:00" {
		t.Errorf("truncated afternoon tail = %s-%s, want 16:24:00-17:00:00", slots[7].Start, slots[7].End)
	}
}

func TestMorningSlotGrid(t *testing.T) {
	slots := MorningSlotGrid(20)
	if len(slots) != 10 {
		t.Fatalf("expected 10 morning slots, got %d", len(slots))
	}
	if last := slots[len(slots)-1]; last.End != "12:00:00" {
		t.Errorf("morning grid ends at %s, want 12:00:00", last.End)
	}
}

func TestMaxSlotsForDay(t *testing.T) {
	if got := MaxSlotsForDay(24, false); got != 20 {
		t.Errorf("full day at 24min = %d, want 20", got)
	}
	if got := MaxSlotsForDay(24, true); got != 10 {
		t.Errorf("half day at 24min = %d, want 10", got)
	}
	if got := MaxSlotsForDay(68, false); got != 7 {
		t.Errorf("full day at 68min = %d, want 7", got)
	}
}

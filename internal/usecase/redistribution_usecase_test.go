package usecase

import (
	"testing"

	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/domain/entity"
	"campus-clinic-scheduler/internal/scheduling"

	"github.com/google/uuid"
)

func TestDedupeAppointments(t *testing.T) {
	a := entity.Appointment{ID: uuid.New()}
	b := entity.Appointment{ID: uuid.New()}
	c := entity.Appointment{ID: uuid.New()}

	// b appears in both lists; its first position must win
	queue := dedupeAppointments(
		[]entity.Appointment{a, b},
		[]entity.Appointment{b, c},
	)

	if len(queue) != 3 {
		t.Fatalf("expected 3 unique appointments, got %d", len(queue))
	}
	want := []uuid.UUID{a.ID, b.ID, c.ID}
	for i, appointment := range queue {
		if appointment.ID != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], appointment.ID)
		}
	}
}

func TestDedupeAppointments_Empty(t *testing.T) {
	if queue := dedupeAppointments(nil, nil); len(queue) != 0 {
		t.Fatalf("expected empty queue, got %d entries", len(queue))
	}
}

func TestMergeCalendar(t *testing.T) {
	base := scheduling.CalendarConfig{
		HiddenWeekdays:  []int{0, 6},
		HalfDayWeekdays: []int{5},
		Holidays:        []string{"2025-12-25"},
	}

	t.Run("nil override keeps defaults", func(t *testing.T) {
		merged := mergeCalendar(base, nil)
		if len(merged.HiddenWeekdays) != 2 || len(merged.Holidays) != 1 {
			t.Fatalf("expected base config unchanged, got %+v", merged)
		}
	})

	t.Run("partial override replaces only present fields", func(t *testing.T) {
		merged := mergeCalendar(base, &dto.CalendarConfigPayload{
			Holidays: []string{"2026-01-01", "2026-01-02"},
		})
		if len(merged.Holidays) != 2 {
			t.Errorf("expected overridden holidays, got %v", merged.Holidays)
		}
		if len(merged.HiddenWeekdays) != 2 {
			t.Errorf("expected hidden weekdays preserved, got %v", merged.HiddenWeekdays)
		}
		if len(merged.HalfDayWeekdays) != 1 {
			t.Errorf("expected half days preserved, got %v", merged.HalfDayWeekdays)
		}
	})

	t.Run("empty non-nil slice clears the field", func(t *testing.T) {
		merged := mergeCalendar(base, &dto.CalendarConfigPayload{HiddenDays: []int{}})
		if len(merged.HiddenWeekdays) != 0 {
			t.Errorf("expected hidden weekdays cleared, got %v", merged.HiddenWeekdays)
		}
	})
}

func TestSlotEndFor(t *testing.T) {
	tests := []struct {
		name      string
		ceiling   int
		halfDay   bool
		slotStart string
		wantEnd   string
		wantOK    bool
	}{
		{"first morning slot", 20, false, "08:00:00", "08:24:00", true},
		{"first afternoon slot", 20, false, "13:00:00", "13:24:00", true},
		{"not a boundary", 20, false, "08:10:00", "", false},
		{"afternoon rejected on half day", 20, true, "13:00:00", "", false},
		{"half day morning slot", 20, true, "11:36:00", "12:00:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, ok := slotEndFor(tt.ceiling, tt.halfDay, tt.slotStart)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if end != tt.wantEnd {
				t.Errorf("expected end %q, got %q", tt.wantEnd, end)
			}
		})
	}
}

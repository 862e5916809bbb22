package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"campus-clinic-scheduler/internal/converter"
	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/domain/entity"
	"campus-clinic-scheduler/internal/domain/repository"
	"campus-clinic-scheduler/internal/scheduling"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

type AvailabilityUsecase interface {
	GetSlotGrid(ctx context.Context, campusID uuid.UUID, date string, appointmentType entity.AppointmentType) (*dto.SlotGridResponse, error)
	IsSlotAvailable(ctx context.Context, campusID uuid.UUID, date string, slotStart string, appointmentType entity.AppointmentType) (*dto.SlotAvailabilityResponse, error)
	GetWeekBoard(ctx context.Context, campusID uuid.UUID, weekStart string) (*dto.WeekBoardResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	calendar        scheduling.CalendarConfig
	appointmentRepo repository.AppointmentRepository
	settingRepo     repository.ScheduleSettingRepository
	limitRepo       repository.WeeklyLimitRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	calendar scheduling.CalendarConfig,
	appointmentRepo repository.AppointmentRepository,
	settingRepo repository.ScheduleSettingRepository,
	limitRepo repository.WeeklyLimitRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		calendar:        calendar,
		appointmentRepo: appointmentRepo,
		settingRepo:     settingRepo,
		limitRepo:       limitRepo,
	}
}

// GetSlotGrid renders the bookable slots for one campus day. Closed days
// (hidden weekday, holiday, past) return an empty grid rather than an error
// so calendar UIs can render them uniformly.
func (u *availabilityUsecase) GetSlotGrid(ctx context.Context, campusID uuid.UUID, date string, appointmentType entity.AppointmentType) (*dto.SlotGridResponse, error) {
	day, err := time.Parse(scheduling.DateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	ceiling, err := u.dailyCeiling(ctx, appointmentType)
	if err != nil {
		return nil, err
	}

	cls := u.calendar.Classify(day, time.Now().UTC())
	response := &dto.SlotGridResponse{
		Date:                date,
		AppointmentType:     string(appointmentType),
		SlotDurationMinutes: scheduling.SlotDuration(ceiling),
		HalfDay:             cls.HalfDay,
	}

	if cls.Hidden || cls.Holiday || cls.Past {
		return response, nil
	}

	var slots []scheduling.Slot
	if cls.HalfDay {
		slots = scheduling.MorningSlotGrid(ceiling)
	} else {
		slots = scheduling.ComputeSlotGrid(ceiling)
	}

	response.Slots = converter.SlotsToResponses(slots)
	response.Total = len(slots)
	return response, nil
}

// IsSlotAvailable reports whether one more appointment fits in the slot
// starting at slotStart. Capacity is compared against the campus setting for
// that weekday; a missing setting means the campus offers nothing that day.
// The booked count is kind-agnostic: both appointment types share the same
// physical rooms.
func (u *availabilityUsecase) IsSlotAvailable(ctx context.Context, campusID uuid.UUID, date string, slotStart string, appointmentType entity.AppointmentType) (*dto.SlotAvailabilityResponse, error) {
	day, err := time.Parse(scheduling.DateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	unavailable := &dto.SlotAvailabilityResponse{Available: false, Booked: 0, MaxPerSlot: 0}

	cls := u.calendar.Classify(day, time.Now().UTC())
	if cls.Hidden || cls.Holiday || cls.Past {
		return unavailable, nil
	}

	setting, err := u.settingRepo.FindByCampusAndDay(u.db.WithContext(ctx), campusID, int(day.Weekday()))
	if err != nil {
		u.log.Warnf("Failed to find schedule setting for campus %s day %d: %+v", campusID, int(day.Weekday()), err)
		return nil, err
	}
	if setting == nil {
		return unavailable, nil
	}

	ceiling, err := u.dailyCeiling(ctx, appointmentType)
	if err != nil {
		return nil, err
	}

	slotEnd, ok := slotEndFor(ceiling, cls.HalfDay, slotStart)
	if !ok {
		return unavailable, nil
	}

	booked, err := u.appointmentRepo.CountInSlot(u.db.WithContext(ctx), campusID, day, slotStart, slotEnd)
	if err != nil {
		u.log.Warnf("Failed to count appointments in slot %s %s: %+v", date, slotStart, err)
		return nil, err
	}

	return &dto.SlotAvailabilityResponse{
		Available:  booked < int64(setting.MaxAppointmentsPerSlot),
		Booked:     booked,
		MaxPerSlot: setting.MaxAppointmentsPerSlot,
	}, nil
}

// GetWeekBoard fetches seven days of appointments concurrently. A day whose
// query fails degrades to an empty list so one bad day doesn't blank the
// whole board; the failure is logged.
func (u *availabilityUsecase) GetWeekBoard(ctx context.Context, campusID uuid.UUID, weekStart string) (*dto.WeekBoardResponse, error) {
	start, err := time.Parse(scheduling.DateLayout, weekStart)
	if err != nil {
		return nil, ErrInvalidDate
	}

	today := time.Now().UTC()
	days := make([]dto.DayBoardResponse, 7)

	var wg sync.WaitGroup
	for i := 0; i < 7; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			day := start.AddDate(0, 0, i)
			cls := u.calendar.Classify(day, today)
			board := dto.DayBoardResponse{
				Date:         day.Format(scheduling.DateLayout),
				Hidden:       cls.Hidden,
				Holiday:      cls.Holiday,
				HalfDay:      cls.HalfDay,
				Past:         cls.Past,
				Appointments: []dto.AppointmentResponse{},
			}

			appointments, err := u.appointmentRepo.Find(u.db.WithContext(ctx), &entity.AppointmentFilter{
				CampusID: &campusID,
				Date:     board.Date,
			})
			if err != nil {
				u.log.Warnf("Failed to load appointments for %s, rendering empty day: %+v", board.Date, err)
			} else {
				board.Appointments = converter.AppointmentsToResponses(appointments)
			}

			days[i] = board
		}(i)
	}
	wg.Wait()

	return &dto.WeekBoardResponse{
		WeekStart: weekStart,
		Days:      days,
	}, nil
}

// dailyCeiling resolves the per-day appointment ceiling for a kind, falling
// back to the default when no limit row is configured.
func (u *availabilityUsecase) dailyCeiling(ctx context.Context, appointmentType entity.AppointmentType) (int, error) {
	limit, err := u.limitRepo.FindByType(u.db.WithContext(ctx), appointmentType)
	if err != nil {
		u.log.Warnf("Failed to find limit for type %s: %+v", appointmentType, err)
		return 0, err
	}
	if limit == nil {
		return entity.DefaultDailyCeiling, nil
	}
	return limit.MaxAppointmentsPerWeek, nil
}

// slotEndFor finds the end time of the grid slot beginning at slotStart.
// Returns false when slotStart does not match any slot boundary.
func slotEndFor(dailyCeiling int, halfDay bool, slotStart string) (string, bool) {
	var slots []scheduling.Slot
	if halfDay {
		slots = scheduling.MorningSlotGrid(dailyCeiling)
	} else {
		slots = scheduling.ComputeSlotGrid(dailyCeiling)
	}
	for _, slot := range slots {
		if slot.Start == slotStart {
			return slot.End, true
		}
	}
	return "", false
}

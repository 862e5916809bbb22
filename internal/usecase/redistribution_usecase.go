package usecase

import (
	"context"
	"fmt"
	"time"

	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/domain/entity"
	"campus-clinic-scheduler/internal/domain/repository"
	"campus-clinic-scheduler/internal/scheduling"
	"campus-clinic-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MorningCutoff moves every appointment of a day when used as the
// redistribution from-time.
const MorningCutoff = "08:00:00"

type RedistributionUsecase interface {
	Redistribute(ctx context.Context, req *dto.RedistributeRequest) (*dto.RedistributeResponse, error)
	MarkHoliday(ctx context.Context, req *dto.MarkHolidayRequest) (*dto.RedistributeResponse, error)
}

type redistributionUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	calendar        scheduling.CalendarConfig
	appointmentRepo repository.AppointmentRepository
	limitRepo       repository.WeeklyLimitRepository
	slotCapacity    *service.SlotCapacityService
	auditService    service.AuditService
}

func NewRedistributionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	calendar scheduling.CalendarConfig,
	appointmentRepo repository.AppointmentRepository,
	limitRepo repository.WeeklyLimitRepository,
	slotCapacity *service.SlotCapacityService,
	auditService service.AuditService,
) RedistributionUsecase {
	return &redistributionUsecase{
		db:              db,
		log:             log,
		calendar:        calendar,
		appointmentRepo: appointmentRepo,
		limitRepo:       limitRepo,
		slotCapacity:    slotCapacity,
		auditService:    auditService,
	}
}

// Redistribute moves every scheduled appointment at the campus on req.Date
// starting at or after req.FromTime onto later valid days, re-slotting the
// displaced queue together with all already-scheduled future appointments so
// the timeline stays gap-free and ordered.
//
// All slot rewrites happen in one DB transaction: either the whole queue
// moves or nothing does.
func (u *redistributionUsecase) Redistribute(ctx context.Context, req *dto.RedistributeRequest) (*dto.RedistributeResponse, error) {
	day, err := time.Parse(scheduling.DateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	cal := mergeCalendar(u.calendar, req.Calendar)
	if err := cal.Validate(); err != nil {
		return nil, err
	}

	return u.redistribute(ctx, cal, req.CampusID, day, req.FromTime, entity.AppointmentType(req.AppointmentType), entity.AuditActionRedistribute)
}

// MarkHoliday closes a whole day: the date joins the holiday set for the
// planning walk and every appointment on it is pushed forward from the
// morning cutoff.
func (u *redistributionUsecase) MarkHoliday(ctx context.Context, req *dto.MarkHolidayRequest) (*dto.RedistributeResponse, error) {
	day, err := time.Parse(scheduling.DateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	cal := mergeCalendar(u.calendar, req.Calendar).WithHoliday(day)
	if err := cal.Validate(); err != nil {
		return nil, err
	}

	return u.redistribute(ctx, cal, req.CampusID, day, MorningCutoff, entity.AppointmentType(req.AppointmentType), entity.AuditActionMarkHoliday)
}

func (u *redistributionUsecase) redistribute(ctx context.Context, cal scheduling.CalendarConfig, campusID uuid.UUID, day time.Time, fromTime string, appointmentType entity.AppointmentType, auditAction entity.AuditAction) (*dto.RedistributeResponse, error) {
	toMove, err := u.appointmentRepo.FindForReschedule(u.db.WithContext(ctx), campusID, day, fromTime)
	if err != nil {
		u.log.Warnf("Failed to find appointments to move on %s: %+v", day.Format(scheduling.DateLayout), err)
		return nil, err
	}

	if len(toMove) == 0 {
		return &dto.RedistributeResponse{
			Moved:      0,
			Reassigned: []dto.ReassignedAppointment{},
			Message:    "no appointments to move",
		}, nil
	}

	ceiling, err := u.dailyCeiling(ctx, appointmentType)
	if err != nil {
		return nil, err
	}

	// The displaced queue is re-planned together with everything already
	// scheduled after the source day, so later appointments shift rather
	// than collide.
	targetDate := cal.NextValidDay(day)
	future, err := u.appointmentRepo.FindScheduledFrom(u.db.WithContext(ctx), campusID, targetDate)
	if err != nil {
		u.log.Warnf("Failed to find future appointments from %s: %+v", targetDate.Format(scheduling.DateLayout), err)
		return nil, err
	}

	queue := dedupeAppointments(toMove, future)
	assignments := scheduling.PlanAssignments(cal, targetDate, len(queue), ceiling)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	reassigned := make([]dto.ReassignedAppointment, 0, len(queue))
	for i, appointment := range queue {
		a := assignments[i]
		if err := u.appointmentRepo.UpdateSlot(tx, appointment.ID, a.Date, a.Start, a.End); err != nil {
			tx.Rollback()
			u.log.Errorf("Failed to reassign appointment %s, rolling back: %+v", appointment.ID, err)
			return nil, err
		}
		reassigned = append(reassigned, dto.ReassignedAppointment{
			ID:        appointment.ID,
			Date:      a.Date.Format(scheduling.DateLayout),
			StartTime: a.Start,
			EndTime:   a.End,
		})
	}

	userID := userIDOrNil(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, userID, auditAction, "schedule", day.Format(scheduling.DateLayout), nil, entity.JSON{
		"campus_id": campusID.String(),
		"from_time": fromTime,
		"moved":     len(toMove),
		"replanned": len(queue),
	}); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit redistribution for %s: %+v", day.Format(scheduling.DateLayout), err)
		return nil, err
	}

	u.refreshSlotCounters(campusID, day, assignments)

	u.log.Infof("Redistribution committed: campus=%s, date=%s, from=%s, moved=%d, replanned=%d",
		campusID, day.Format(scheduling.DateLayout), fromTime, len(toMove), len(queue))

	return &dto.RedistributeResponse{
		Moved:      len(toMove),
		Reassigned: reassigned,
		Message:    fmt.Sprintf("moved %d appointments starting %s", len(toMove), targetDate.Format(scheduling.DateLayout)),
	}, nil
}

// refreshSlotCounters rebuilds the Redis booked counters touched by a
// redistribution. Best effort: counters self-heal on startup sync, so
// failures only log.
func (u *redistributionUsecase) refreshSlotCounters(campusID uuid.UUID, sourceDay time.Time, assignments []scheduling.Assignment) {
	syncCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := u.slotCapacity.DropDayCounters(syncCtx, campusID, sourceDay); err != nil {
		u.log.Warnf("Failed to drop counters for source day (non-fatal): %+v", err)
	}

	synced := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		key := a.Date.Format(scheduling.DateLayout) + a.Start
		if synced[key] {
			continue
		}
		synced[key] = true
		if err := u.slotCapacity.SyncSlot(syncCtx, campusID, a.Date, a.Start, a.End); err != nil {
			u.log.Warnf("Failed to sync slot counter (non-fatal): %+v", err)
		}
	}
}

func (u *redistributionUsecase) dailyCeiling(ctx context.Context, appointmentType entity.AppointmentType) (int, error) {
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

// mergeCalendar overlays a per-request calendar payload on the configured
// defaults. Only fields present in the payload are replaced.
func mergeCalendar(base scheduling.CalendarConfig, override *dto.CalendarConfigPayload) scheduling.CalendarConfig {
	if override == nil {
		return base
	}
	out := base
	if override.HiddenDays != nil {
		out.HiddenWeekdays = override.HiddenDays
	}
	if override.HalfDays != nil {
		out.HalfDayWeekdays = override.HalfDays
	}
	if override.Holidays != nil {
		out.Holidays = override.Holidays
	}
	return out
}

// dedupeAppointments concatenates the lists dropping later duplicates, so an
// appointment appearing both in the displaced set and the future set keeps
// its earlier queue position.
func dedupeAppointments(lists ...[]entity.Appointment) []entity.Appointment {
	seen := make(map[uuid.UUID]bool)
	var out []entity.Appointment
	for _, list := range lists {
		for _, appointment := range list {
			if seen[appointment.ID] {
				continue
			}
			seen[appointment.ID] = true
			out = append(out, appointment)
		}
	}
	return out
}

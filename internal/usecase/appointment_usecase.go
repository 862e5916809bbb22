package usecase

import (
	"context"
	"errors"
	"time"

	"campus-clinic-scheduler/internal/converter"
	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/delivery/http/middleware"
	"campus-clinic-scheduler/internal/domain/entity"
	"campus-clinic-scheduler/internal/domain/repository"
	"campus-clinic-scheduler/internal/scheduling"
	"campus-clinic-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrCampusNotFound       = errors.New("campus not found")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrDayNotBookable       = errors.New("no appointments are offered on this day")
	ErrAppointmentPast      = errors.New("cannot book a past date")
	ErrInvalidSlot          = errors.New("start time does not match a slot boundary")
	ErrAppointmentFinalized = errors.New("appointment is already in a terminal state")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, id uuid.UUID) error
	CancelAppointment(ctx context.Context, id uuid.UUID) error
	MarkNoShow(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	calendar        scheduling.CalendarConfig
	appointmentRepo repository.AppointmentRepository
	campusRepo      repository.CampusRepository
	doctorRepo      repository.DoctorRepository
	settingRepo     repository.ScheduleSettingRepository
	limitRepo       repository.WeeklyLimitRepository
	slotCapacity    *service.SlotCapacityService
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	calendar scheduling.CalendarConfig,
	appointmentRepo repository.AppointmentRepository,
	campusRepo repository.CampusRepository,
	doctorRepo repository.DoctorRepository,
	settingRepo repository.ScheduleSettingRepository,
	limitRepo repository.WeeklyLimitRepository,
	slotCapacity *service.SlotCapacityService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		calendar:        calendar,
		appointmentRepo: appointmentRepo,
		campusRepo:      campusRepo,
		doctorRepo:      doctorRepo,
		settingRepo:     settingRepo,
		limitRepo:       limitRepo,
		slotCapacity:    slotCapacity,
		auditService:    auditService,
	}
}

// CreateAppointment books one appointment with a Redis-first capacity check.
//
// Flow:
// 1. Validate campus, doctor, day openness and slot boundary
// 2. Redis Reserve (atomic booked-counter increment with cap)
// 3. Insert appointment to DB
// 4. If DB fails -> compensate: Release the Redis reservation
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	day, err := time.Parse(scheduling.DateLayout, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	campus, err := u.campusRepo.FindByID(u.db.WithContext(ctx), req.CampusID)
	if err != nil {
		u.log.Warnf("Failed to find campus %s: %+v", req.CampusID, err)
		return nil, err
	}
	if campus == nil {
		return nil, ErrCampusNotFound
	}

	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %s: %+v", *req.DoctorID, err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
	}

	cls := u.calendar.Classify(day, time.Now().UTC())
	if cls.Past {
		return nil, ErrAppointmentPast
	}
	if cls.Hidden || cls.Holiday {
		return nil, ErrDayNotBookable
	}

	setting, err := u.settingRepo.FindByCampusAndDay(u.db.WithContext(ctx), req.CampusID, int(day.Weekday()))
	if err != nil {
		u.log.Warnf("Failed to find schedule setting: %+v", err)
		return nil, err
	}
	if setting == nil {
		return nil, ErrDayNotBookable
	}

	ceiling, err := u.dailyCeiling(ctx, entity.AppointmentType(req.AppointmentType))
	if err != nil {
		return nil, err
	}

	slotEnd, ok := slotEndFor(ceiling, cls.HalfDay, req.StartTime)
	if !ok {
		return nil, ErrInvalidSlot
	}

	// Redis atomic slot reservation. Concurrent bookings contend on a
	// counter in Redis rather than on DB row locks.
	if _, err := u.slotCapacity.Reserve(ctx, req.CampusID, day, req.StartTime, setting.MaxAppointmentsPerSlot); err != nil {
		if errors.Is(err, service.ErrSlotFull) {
			return nil, service.ErrSlotFull
		}
		u.log.Warnf("Failed Redis slot reservation for %s %s: %+v", req.AppointmentDate, req.StartTime, err)
		return nil, err
	}

	appointment := &entity.Appointment{
		CampusID:        req.CampusID,
		AppointmentDate: scheduling.DateOnly(day),
		StartTime:       req.StartTime,
		EndTime:         slotEnd,
		AppointmentType: entity.AppointmentType(req.AppointmentType),
		Status:          entity.AppointmentStatusScheduled,
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		PatientContact:  req.PatientContact,
		ChiefComplaint:  req.ChiefComplaint,
		DoctorID:        req.DoctorID,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Errorf("Failed to insert appointment to DB, compensating Redis: %+v", err)

		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if releaseErr := u.slotCapacity.Release(releaseCtx, req.CampusID, day, req.StartTime); releaseErr != nil {
			u.log.Errorf("CRITICAL: Failed to release slot reservation after DB failure for %s %s: %+v", req.AppointmentDate, req.StartTime, releaseErr)
		}

		return nil, err
	}

	userID := userIDOrNil(ctx)
	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), appointment); err != nil {
		u.log.Warnf("Failed to audit appointment create %s (non-fatal): %+v", appointment.ID, err)
	}

	u.log.Infof("Appointment created: id=%s, campus=%s, date=%s, slot=%s", appointment.ID, req.CampusID, req.AppointmentDate, req.StartTime)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.Find(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointment edits patient/doctor details. Slot moves go through the
// redistribution engine, never through this method.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.IsScheduled() {
		return nil, ErrAppointmentFinalized
	}

	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), *req.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		appointment.DoctorID = req.DoctorID
	}
	if req.PatientName != nil {
		appointment.PatientName = *req.PatientName
	}
	if req.PatientEmail != nil {
		appointment.PatientEmail = req.PatientEmail
	}
	if req.PatientContact != nil {
		appointment.PatientContact = req.PatientContact
	}
	if req.ChiefComplaint != nil {
		appointment.ChiefComplaint = req.ChiefComplaint
	}

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	userID := userIDOrNil(ctx)
	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), userID, entity.AuditActionAppointmentUpdate, "appointment", id.String(), nil, appointment); err != nil {
		u.log.Warnf("Failed to audit appointment update %s (non-fatal): %+v", id, err)
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, id uuid.UUID) error {
	return u.transition(ctx, id, entity.AppointmentStatusCompleted, entity.AuditActionAppointmentComplete, false)
}

// CancelAppointment cancels and frees the slot's Redis capacity so the slot
// immediately becomes bookable again.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID) error {
	return u.transition(ctx, id, entity.AppointmentStatusCancelled, entity.AuditActionAppointmentCancel, true)
}

func (u *appointmentUsecase) MarkNoShow(ctx context.Context, id uuid.UUID) error {
	return u.transition(ctx, id, entity.AppointmentStatusNoShow, entity.AuditActionAppointmentNoShow, false)
}

// transition moves a scheduled appointment into a terminal state. Terminal
// states never transition again.
func (u *appointmentUsecase) transition(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus, auditAction entity.AuditAction, releaseSlot bool) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if !appointment.IsScheduled() {
		return ErrAppointmentFinalized
	}

	if err := u.appointmentRepo.UpdateStatus(u.db.WithContext(ctx), id, status); err != nil {
		u.log.Warnf("Failed to update appointment %s to %s: %+v", id, status, err)
		return err
	}

	if releaseSlot {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := u.slotCapacity.Release(releaseCtx, appointment.CampusID, appointment.AppointmentDate, appointment.StartTime); err != nil {
			// Log but don't fail - counters are re-synced on next startup
			u.log.Warnf("Failed to release slot for appointment %s (non-fatal): %+v", id, err)
		}
	}

	userID := userIDOrNil(ctx)
	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), userID, auditAction, "appointment", id.String(), string(appointment.Status), string(status)); err != nil {
		u.log.Warnf("Failed to audit appointment transition %s (non-fatal): %+v", id, err)
	}

	u.log.Infof("Appointment %s: %s -> %s", id, appointment.Status, status)
	return nil
}

func (u *appointmentUsecase) dailyCeiling(ctx context.Context, appointmentType entity.AppointmentType) (int, error) {
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

// userIDOrNil reads the acting staff user from the request context; audit
// entries for unauthenticated internal calls carry a nil user.
func userIDOrNil(ctx context.Context) *uuid.UUID {
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &userID
	}
	return nil
}

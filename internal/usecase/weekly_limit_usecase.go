package usecase

import (
	"context"
	"errors"

	"campus-clinic-scheduler/internal/converter"
	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/domain/entity"
	"campus-clinic-scheduler/internal/domain/repository"
	"campus-clinic-scheduler/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrLimitNotFound = errors.New("appointment limit not found")

type WeeklyLimitUsecase interface {
	GetAllLimits(ctx context.Context) (*dto.WeeklyLimitListResponse, error)
	GetLimit(ctx context.Context, appointmentType entity.AppointmentType) (*dto.WeeklyLimitResponse, error)
	UpdateLimit(ctx context.Context, appointmentType entity.AppointmentType, req *dto.UpdateWeeklyLimitRequest) (*dto.WeeklyLimitResponse, error)
}

type weeklyLimitUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	limitRepo    repository.WeeklyLimitRepository
	auditService service.AuditService
}

func NewWeeklyLimitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	limitRepo repository.WeeklyLimitRepository,
	auditService service.AuditService,
) WeeklyLimitUsecase {
	return &weeklyLimitUsecase{
		db:           db,
		log:          log,
		limitRepo:    limitRepo,
		auditService: auditService,
	}
}

func (u *weeklyLimitUsecase) GetAllLimits(ctx context.Context) (*dto.WeeklyLimitListResponse, error) {
	limits, err := u.limitRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all limits: %+v", err)
		return nil, err
	}

	return &dto.WeeklyLimitListResponse{
		Limits: converter.WeeklyLimitsToResponses(limits),
		Total:  len(limits),
	}, nil
}

func (u *weeklyLimitUsecase) GetLimit(ctx context.Context, appointmentType entity.AppointmentType) (*dto.WeeklyLimitResponse, error) {
	limit, err := u.limitRepo.FindByType(u.db.WithContext(ctx), appointmentType)
	if err != nil {
		u.log.Warnf("Failed to find limit for type %s: %+v", appointmentType, err)
		return nil, err
	}
	if limit == nil {
		return nil, ErrLimitNotFound
	}
	return converter.WeeklyLimitToResponse(limit), nil
}

// UpdateLimit changes the per-day ceiling for a kind. Existing appointments
// keep their slots; the new ceiling applies to future grids and
// redistribution runs.
func (u *weeklyLimitUsecase) UpdateLimit(ctx context.Context, appointmentType entity.AppointmentType, req *dto.UpdateWeeklyLimitRequest) (*dto.WeeklyLimitResponse, error) {
	limit, err := u.limitRepo.FindByType(u.db.WithContext(ctx), appointmentType)
	if err != nil {
		u.log.Warnf("Failed to find limit for type %s: %+v", appointmentType, err)
		return nil, err
	}
	if limit == nil {
		return nil, ErrLimitNotFound
	}

	oldValue := limit.MaxAppointmentsPerWeek

	if err := u.limitRepo.UpdateLimit(u.db.WithContext(ctx), appointmentType, req.MaxAppointments); err != nil {
		u.log.Warnf("Failed to update limit for type %s: %+v", appointmentType, err)
		return nil, err
	}
	limit.MaxAppointmentsPerWeek = req.MaxAppointments

	userID := userIDOrNil(ctx)
	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), userID, entity.AuditActionLimitUpdate, "weekly_schedule_limit", string(appointmentType), oldValue, req.MaxAppointments); err != nil {
		u.log.Warnf("Failed to audit limit update (non-fatal): %+v", err)
	}

	u.log.Infof("Limit updated: type=%s, %d -> %d", appointmentType, oldValue, req.MaxAppointments)
	return converter.WeeklyLimitToResponse(limit), nil
}

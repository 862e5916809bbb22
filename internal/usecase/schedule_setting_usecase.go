package usecase

import (
	"context"
	"errors"

	"campus-clinic-scheduler/internal/converter"
	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/domain/entity"
	"campus-clinic-scheduler/internal/domain/repository"
	"campus-clinic-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSettingNotFound = errors.New("schedule setting not found")
	ErrSettingExists   = errors.New("a setting already exists for this campus and weekday")
	ErrInvalidTimeSpan = errors.New("start time must be before end time")
)

type ScheduleSettingUsecase interface {
	CreateSetting(ctx context.Context, req *dto.CreateScheduleSettingRequest) (*dto.ScheduleSettingResponse, error)
	GetSetting(ctx context.Context, id uuid.UUID) (*dto.ScheduleSettingResponse, error)
	GetAllSettings(ctx context.Context) (*dto.ScheduleSettingListResponse, error)
	UpdateSetting(ctx context.Context, id uuid.UUID, req *dto.UpdateScheduleSettingRequest) (*dto.ScheduleSettingResponse, error)
	DeleteSetting(ctx context.Context, id uuid.UUID) error
}

type scheduleSettingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingRepo  repository.ScheduleSettingRepository
	campusRepo   repository.CampusRepository
	auditService service.AuditService
}

func NewScheduleSettingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingRepo repository.ScheduleSettingRepository,
	campusRepo repository.CampusRepository,
	auditService service.AuditService,
) ScheduleSettingUsecase {
	return &scheduleSettingUsecase{
		db:           db,
		log:          log,
		settingRepo:  settingRepo,
		campusRepo:   campusRepo,
		auditService: auditService,
	}
}

func (u *scheduleSettingUsecase) CreateSetting(ctx context.Context, req *dto.CreateScheduleSettingRequest) (*dto.ScheduleSettingResponse, error) {
	if req.StartTime >= req.EndTime {
		return nil, ErrInvalidTimeSpan
	}

	campus, err := u.campusRepo.FindByID(u.db.WithContext(ctx), req.CampusID)
	if err != nil {
		u.log.Warnf("Failed to find campus %s: %+v", req.CampusID, err)
		return nil, err
	}
	if campus == nil {
		return nil, ErrCampusNotFound
	}

	existing, err := u.settingRepo.FindByCampusAndDay(u.db.WithContext(ctx), req.CampusID, req.DayOfWeek)
	if err != nil {
		u.log.Warnf("Failed to check existing setting: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSettingExists
	}

	setting := &entity.ScheduleSetting{
		CampusID:               req.CampusID,
		DayOfWeek:              req.DayOfWeek,
		StartTime:              req.StartTime,
		EndTime:                req.EndTime,
		MaxAppointmentsPerSlot: req.MaxAppointmentsPerSlot,
		AppointmentType:        entity.AppointmentType(req.AppointmentType),
		IsActive:               true,
	}

	if err := u.settingRepo.Create(u.db.WithContext(ctx), setting); err != nil {
		u.log.Warnf("Failed to create schedule setting: %+v", err)
		return nil, err
	}

	userID := userIDOrNil(ctx)
	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), userID, entity.AuditActionSettingCreate, "schedule_setting", setting.ID.String(), setting); err != nil {
		u.log.Warnf("Failed to audit setting create (non-fatal): %+v", err)
	}

	u.log.Infof("Schedule setting created: id=%s, campus=%s, day=%d", setting.ID, req.CampusID, req.DayOfWeek)
	return converter.ScheduleSettingToResponse(setting), nil
}

func (u *scheduleSettingUsecase) GetSetting(ctx context.Context, id uuid.UUID) (*dto.ScheduleSettingResponse, error) {
	setting, err := u.settingRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find setting %s: %+v", id, err)
		return nil, err
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}
	return converter.ScheduleSettingToResponse(setting), nil
}

func (u *scheduleSettingUsecase) GetAllSettings(ctx context.Context) (*dto.ScheduleSettingListResponse, error) {
	settings, err := u.settingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all settings: %+v", err)
		return nil, err
	}

	return &dto.ScheduleSettingListResponse{
		Settings: converter.ScheduleSettingsToResponses(settings),
		Total:    len(settings),
	}, nil
}

func (u *scheduleSettingUsecase) UpdateSetting(ctx context.Context, id uuid.UUID, req *dto.UpdateScheduleSettingRequest) (*dto.ScheduleSettingResponse, error) {
	setting, err := u.settingRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find setting %s: %+v", id, err)
		return nil, err
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}

	old := *setting

	if req.StartTime != nil {
		setting.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		setting.EndTime = *req.EndTime
	}
	if setting.StartTime >= setting.EndTime {
		return nil, ErrInvalidTimeSpan
	}
	if req.MaxAppointmentsPerSlot != nil {
		setting.MaxAppointmentsPerSlot = *req.MaxAppointmentsPerSlot
	}
	if req.IsActive != nil {
		setting.IsActive = *req.IsActive
	}

	if err := u.settingRepo.Update(u.db.WithContext(ctx), setting); err != nil {
		u.log.Warnf("Failed to update setting %s: %+v", id, err)
		return nil, err
	}

	userID := userIDOrNil(ctx)
	if err := u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), userID, entity.AuditActionSettingUpdate, "schedule_setting", id.String(), old, setting); err != nil {
		u.log.Warnf("Failed to audit setting update (non-fatal): %+v", err)
	}

	return converter.ScheduleSettingToResponse(setting), nil
}

func (u *scheduleSettingUsecase) DeleteSetting(ctx context.Context, id uuid.UUID) error {
	setting, err := u.settingRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find setting %s: %+v", id, err)
		return err
	}
	if setting == nil {
		return ErrSettingNotFound
	}

	affected, err := u.settingRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete setting %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrSettingNotFound
	}

	userID := userIDOrNil(ctx)
	if err := u.auditService.LogDelete(ctx, u.db.WithContext(ctx), userID, entity.AuditActionSettingDelete, "schedule_setting", id.String(), setting); err != nil {
		u.log.Warnf("Failed to audit setting delete (non-fatal): %+v", err)
	}

	u.log.Infof("Schedule setting deleted: id=%s", id)
	return nil
}

package repository

import (
	"errors"

	"campus-clinic-scheduler/internal/domain/entity"
	domainRepo "campus-clinic-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleSettingRepository struct{}

func NewScheduleSettingRepository() domainRepo.ScheduleSettingRepository {
	return &scheduleSettingRepository{}
}

func (r *scheduleSettingRepository) Create(db *gorm.DB, setting *entity.ScheduleSetting) error {
	return db.Create(setting).Error
}

func (r *scheduleSettingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ScheduleSetting, error) {
	var setting entity.ScheduleSetting
	err := db.Where("id = ?", id).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *scheduleSettingRepository) FindAll(db *gorm.DB) ([]entity.ScheduleSetting, error) {
	var settings []entity.ScheduleSetting
	err := db.Preload("Campus").Order("day_of_week ASC").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *scheduleSettingRepository) FindActive(db *gorm.DB) ([]entity.ScheduleSetting, error) {
	var settings []entity.ScheduleSetting
	err := db.Where("is_active = ?", true).Order("day_of_week ASC").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *scheduleSettingRepository) FindByCampusAndDay(db *gorm.DB, campusID uuid.UUID, dayOfWeek int) (*entity.ScheduleSetting, error) {
	var setting entity.ScheduleSetting
	err := db.
		Where("campus_id = ? AND day_of_week = ? AND is_active = ?", campusID, dayOfWeek, true).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *scheduleSettingRepository) Update(db *gorm.DB, setting *entity.ScheduleSetting) error {
	return db.Omit("Campus").Save(setting).Error
}

func (r *scheduleSettingRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.ScheduleSetting{})
	return affected.RowsAffected, affected.Error
}

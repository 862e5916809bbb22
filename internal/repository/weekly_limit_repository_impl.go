package repository

import (
	"errors"

	"campus-clinic-scheduler/internal/domain/entity"
	domainRepo "campus-clinic-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type weeklyLimitRepository struct{}

func NewWeeklyLimitRepository() domainRepo.WeeklyLimitRepository {
	return &weeklyLimitRepository{}
}

func (r *weeklyLimitRepository) FindAll(db *gorm.DB) ([]entity.WeeklyScheduleLimit, error) {
	var limits []entity.WeeklyScheduleLimit
	err := db.Order("appointment_type ASC").Find(&limits).Error
	if err != nil {
		return nil, err
	}
	return limits, nil
}

func (r *weeklyLimitRepository) FindByType(db *gorm.DB, appointmentType entity.AppointmentType) (*entity.WeeklyScheduleLimit, error) {
	var limit entity.WeeklyScheduleLimit
	err := db.Where("appointment_type = ?", appointmentType).First(&limit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &limit, nil
}

func (r *weeklyLimitRepository) UpdateLimit(db *gorm.DB, appointmentType entity.AppointmentType, newLimit int) error {
	result := db.Model(&entity.WeeklyScheduleLimit{}).
		Where("appointment_type = ?", appointmentType).
		Update("max_appointments_per_week", newLimit)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"campus-clinic-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type WeeklyLimitRepository interface {
	FindAll(db *gorm.DB) ([]entity.WeeklyScheduleLimit, error)
	FindByType(db *gorm.DB, appointmentType entity.AppointmentType) (*entity.WeeklyScheduleLimit, error)
	UpdateLimit(db *gorm.DB, appointmentType entity.AppointmentType, newLimit int) error
}

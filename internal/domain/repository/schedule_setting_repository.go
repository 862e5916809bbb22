package repository

import (
	"campus-clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleSettingRepository interface {
	Create(db *gorm.DB, setting *entity.ScheduleSetting) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ScheduleSetting, error)
	FindAll(db *gorm.DB) ([]entity.ScheduleSetting, error)
	FindActive(db *gorm.DB) ([]entity.ScheduleSetting, error)

	// FindByCampusAndDay returns the first active setting for the campus and
	// weekday regardless of appointment kind, or nil when the weekday is
	// unconfigured.
	FindByCampusAndDay(db *gorm.DB, campusID uuid.UUID, dayOfWeek int) (*entity.ScheduleSetting, error)

	Update(db *gorm.DB, setting *entity.ScheduleSetting) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}

package repository

import (
	"time"

	"campus-clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	Find(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)

	// FindForReschedule returns the scheduled appointments on date at the
	// campus whose start time is at or after fromTime, ordered by start time.
	FindForReschedule(db *gorm.DB, campusID uuid.UUID, date time.Time, fromTime string) ([]entity.Appointment, error)

	// FindScheduledFrom returns every scheduled appointment at the campus on
	// or after fromDate, ordered by (date, start time).
	FindScheduledFrom(db *gorm.DB, campusID uuid.UUID, fromDate time.Time) ([]entity.Appointment, error)

	// CountInSlot counts appointments on (campus, date) whose start time
	// falls in [slotStart, slotEnd), regardless of kind or status.
	CountInSlot(db *gorm.DB, campusID uuid.UUID, date time.Time, slotStart, slotEnd string) (int64, error)

	// UpdateSlot rewrites only the date/time fields, preserving identity.
	UpdateSlot(db *gorm.DB, id uuid.UUID, date time.Time, startTime, endTime string) error

	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
	Update(db *gorm.DB, appointment *entity.Appointment) error
}

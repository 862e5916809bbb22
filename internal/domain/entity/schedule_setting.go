package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleSetting defines clinic operating hours and per-slot capacity for
// one campus, weekday and appointment kind. A weekday with no setting row
// for a campus is unconfigured: no slots are offered there at all.
type ScheduleSetting struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CampusID               uuid.UUID       `gorm:"type:uuid;not null;index:idx_settings_campus_day" json:"campus_id"`
	DayOfWeek              int             `gorm:"not null;index:idx_settings_campus_day" json:"day_of_week"` // 0=Sunday .. 6=Saturday
	StartTime              string          `gorm:"type:time;not null" json:"start_time"`
	EndTime                string          `gorm:"type:time;not null" json:"end_time"`
	MaxAppointmentsPerSlot int             `gorm:"not null;default:1" json:"max_appointments_per_slot"`
	AppointmentType        AppointmentType `gorm:"type:varchar(30);not null" json:"appointment_type"`
	IsActive               bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt              time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Campus Campus `gorm:"foreignKey:CampusID" json:"campus,omitempty"`
}

func (ScheduleSetting) TableName() string {
	return "schedule_settings"
}

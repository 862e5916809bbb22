package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyScheduleLimit holds the appointment ceiling for one appointment
// kind. Despite the historical table and column naming, the value is
// applied as a per-day ceiling throughout the scheduler: it caps how many
// appointments of the kind fit in one day and thereby drives slot width.
type WeeklyScheduleLimit struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentType        AppointmentType `gorm:"type:varchar(30);uniqueIndex;not null" json:"appointment_type"`
	MaxAppointmentsPerWeek int             `gorm:"not null;default:20" json:"max_appointments_per_week"`
	CreatedAt              time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WeeklyScheduleLimit) TableName() string {
	return "weekly_schedule_limits"
}

// DefaultDailyCeiling applies when no limit row exists for a kind.
const DefaultDailyCeiling = 20

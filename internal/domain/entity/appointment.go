package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentType is the kind of clinic visit.
type AppointmentType string

const (
	AppointmentTypePhysicalExam AppointmentType = "physical_exam"
	AppointmentTypeConsultation AppointmentType = "consultation"
)

// AppointmentStatus represents the lifecycle state of an appointment.
// Scheduled is the only non-terminal state; completed, cancelled and
// no_show are terminal.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a scheduled clinic visit. Patient details are free
// text rather than a user reference: walk-ins are booked by staff without a
// linked account. StartTime/EndTime are zero-padded HH:MM:SS strings so
// range queries compare lexicographically.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CampusID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"campus_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	StartTime       string            `gorm:"type:time;not null" json:"start_time"`
	EndTime         string            `gorm:"type:time;not null" json:"end_time"`
	AppointmentType AppointmentType   `gorm:"type:varchar(30);not null" json:"appointment_type"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	PatientName     string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientEmail    *string           `gorm:"type:varchar(255)" json:"patient_email,omitempty"`
	PatientContact  *string           `gorm:"type:varchar(20)" json:"patient_contact,omitempty"`
	ChiefComplaint  *string           `gorm:"type:text" json:"chief_complaint,omitempty"`
	DoctorID        *uuid.UUID        `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Campus Campus  `gorm:"foreignKey:CampusID" json:"campus,omitempty"`
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks whether the appointment is still active.
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// Complete marks the appointment as completed.
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// Cancel marks the appointment as cancelled.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// MarkNoShow marks the appointment as a no-show.
func (a *Appointment) MarkNoShow() {
	a.Status = AppointmentStatusNoShow
}

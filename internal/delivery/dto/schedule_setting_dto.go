package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateScheduleSettingRequest struct {
	CampusID               uuid.UUID `json:"campus_id" validate:"required"`
	DayOfWeek              int       `json:"day_of_week" validate:"min=0,max=6"`
	StartTime              string    `json:"start_time" validate:"required,clocktime"` // Format: HH:MM:SS
	EndTime                string    `json:"end_time" validate:"required,clocktime"`   // Format: HH:MM:SS
	MaxAppointmentsPerSlot int       `json:"max_appointments_per_slot" validate:"required,min=1"`
	AppointmentType        string    `json:"appointment_type" validate:"required,oneof=physical_exam consultation"`
}

type UpdateScheduleSettingRequest struct {
	StartTime              *string `json:"start_time" validate:"omitempty,clocktime"`
	EndTime                *string `json:"end_time" validate:"omitempty,clocktime"`
	MaxAppointmentsPerSlot *int    `json:"max_appointments_per_slot" validate:"omitempty,min=1"`
	IsActive               *bool   `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type ScheduleSettingResponse struct {
	ID                     uuid.UUID       `json:"id"`
	CampusID               uuid.UUID       `json:"campus_id"`
	Campus                 *CampusResponse `json:"campus,omitempty"`
	DayOfWeek              int             `json:"day_of_week"`
	StartTime              string          `json:"start_time"`
	EndTime                string          `json:"end_time"`
	MaxAppointmentsPerSlot int             `json:"max_appointments_per_slot"`
	AppointmentType        string          `json:"appointment_type"`
	IsActive               bool            `json:"is_active"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

type ScheduleSettingListResponse struct {
	Settings []ScheduleSettingResponse `json:"settings"`
	Total    int                       `json:"total"`
}

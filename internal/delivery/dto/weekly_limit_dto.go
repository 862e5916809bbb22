package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateWeeklyLimitRequest struct {
	MaxAppointments int `json:"max_appointments" validate:"required,min=1,max=100"`
}

// Response DTOs

type WeeklyLimitResponse struct {
	ID                  uuid.UUID `json:"id"`
	AppointmentType     string    `json:"appointment_type"`
	MaxAppointments     int       `json:"max_appointments"`
	SlotDurationMinutes int       `json:"slot_duration_minutes"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type WeeklyLimitListResponse struct {
	Limits []WeeklyLimitResponse `json:"limits"`
	Total  int                   `json:"total"`
}

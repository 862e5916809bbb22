package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

// CalendarConfigPayload overrides the configured clinic calendar for one
// redistribution run. All fields are optional; omitted fields fall back to
// the configured defaults.
type CalendarConfigPayload struct {
	HiddenDays []int    `json:"hidden_days" validate:"omitempty,dive,min=0,max=6"`
	HalfDays   []int    `json:"half_days" validate:"omitempty,dive,min=0,max=6"`
	Holidays   []string `json:"holidays" validate:"omitempty,dive,dateonly"`
}

type RedistributeRequest struct {
	CampusID        uuid.UUID              `json:"campus_id" validate:"required"`
	Date            string                 `json:"date" validate:"required,dateonly"`      // Format: YYYY-MM-DD
	FromTime        string                 `json:"from_time" validate:"required,clocktime"` // Format: HH:MM:SS
	AppointmentType string                 `json:"appointment_type" validate:"required,oneof=physical_exam consultation"`
	Calendar        *CalendarConfigPayload `json:"calendar" validate:"omitempty"`
}

type MarkHolidayRequest struct {
	CampusID        uuid.UUID              `json:"campus_id" validate:"required"`
	Date            string                 `json:"date" validate:"required,dateonly"` // Format: YYYY-MM-DD
	AppointmentType string                 `json:"appointment_type" validate:"required,oneof=physical_exam consultation"`
	Calendar        *CalendarConfigPayload `json:"calendar" validate:"omitempty"`
}

// Response DTOs

type ReassignedAppointment struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type RedistributeResponse struct {
	Moved      int                     `json:"moved"`
	Reassigned []ReassignedAppointment `json:"reassigned"`
	Message    string                  `json:"message"`
}

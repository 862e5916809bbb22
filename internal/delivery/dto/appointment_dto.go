package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	CampusID        uuid.UUID  `json:"campus_id" validate:"required"`
	AppointmentDate string     `json:"appointment_date" validate:"required,dateonly"` // Format: YYYY-MM-DD
	StartTime       string     `json:"start_time" validate:"required,clocktime"`      // Format: HH:MM:SS
	AppointmentType string     `json:"appointment_type" validate:"required,oneof=physical_exam consultation"`
	PatientName     string     `json:"patient_name" validate:"required,max=255"`
	PatientEmail    *string    `json:"patient_email" validate:"omitempty,email"`
	PatientContact  *string    `json:"patient_contact" validate:"omitempty,max=20"`
	ChiefComplaint  *string    `json:"chief_complaint" validate:"omitempty"`
	DoctorID        *uuid.UUID `json:"doctor_id" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	PatientName    *string    `json:"patient_name" validate:"omitempty,max=255"`
	PatientEmail   *string    `json:"patient_email" validate:"omitempty,email"`
	PatientContact *string    `json:"patient_contact" validate:"omitempty,max=20"`
	ChiefComplaint *string    `json:"chief_complaint" validate:"omitempty"`
	DoctorID       *uuid.UUID `json:"doctor_id" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	CampusID        uuid.UUID       `json:"campus_id"`
	Campus          *CampusResponse `json:"campus,omitempty"`
	AppointmentDate string          `json:"appointment_date"`
	StartTime       string          `json:"start_time"`
	EndTime         string          `json:"end_time"`
	AppointmentType string          `json:"appointment_type"`
	Status          string          `json:"status"`
	PatientName     string          `json:"patient_name"`
	PatientEmail    *string         `json:"patient_email,omitempty"`
	PatientContact  *string         `json:"patient_contact,omitempty"`
	ChiefComplaint  *string         `json:"chief_complaint,omitempty"`
	DoctorID        *uuid.UUID      `json:"doctor_id,omitempty"`
	Doctor          *DoctorResponse `json:"doctor,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

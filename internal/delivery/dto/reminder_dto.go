package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type SendRemindersRequest struct {
	CampusID   uuid.UUID `json:"campus_id" validate:"required"`
	TargetDate string    `json:"target_date" validate:"required"` // YYYY-MM-DD, "today" or "tomorrow"
}

// Response DTOs

type SendRemindersResponse struct {
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"` // appointments without a patient email
	Failed  int `json:"failed"`
}

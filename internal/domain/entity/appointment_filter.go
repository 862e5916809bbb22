package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by the repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	CampusID     *uuid.UUID
	Date         string // Format: YYYY-MM-DD
	DateFrom     string // Format: YYYY-MM-DD (inclusive)
	DateTo       string // Format: YYYY-MM-DD (inclusive)
	Status       AppointmentStatus
	StartTimeGte string // Format: HH:MM:SS
}

package dto

// Response DTOs

type SlotResponse struct {
	StartTime string `json:"start_time"` // Format: HH:MM:SS
	EndTime   string `json:"end_time"`   // Format: HH:MM:SS
	Label     string `json:"label"`      // Format: "8:00 AM"
}

type SlotGridResponse struct {
	Date                string         `json:"date"`
	AppointmentType     string         `json:"appointment_type"`
	SlotDurationMinutes int            `json:"slot_duration_minutes"`
	HalfDay             bool           `json:"half_day"`
	Slots               []SlotResponse `json:"slots"`
	Total               int            `json:"total"`
}

type SlotAvailabilityResponse struct {
	Available  bool  `json:"available"`
	Booked     int64 `json:"booked"`
	MaxPerSlot int   `json:"max_per_slot"`
}

type DayBoardResponse struct {
	Date         string                `json:"date"`
	Hidden       bool                  `json:"hidden"`
	Holiday      bool                  `json:"holiday"`
	HalfDay      bool                  `json:"half_day"`
	Past         bool                  `json:"past"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type WeekBoardResponse struct {
	WeekStart string             `json:"week_start"`
	Days      []DayBoardResponse `json:"days"`
}

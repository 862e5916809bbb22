package converter

import (
	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/domain/entity"
	"campus-clinic-scheduler/internal/scheduling"
)

// WeeklyLimitToResponse converts a WeeklyScheduleLimit entity to WeeklyLimitResponse DTO.
// The derived slot duration is included so clients don't reimplement the division.
func WeeklyLimitToResponse(limit *entity.WeeklyScheduleLimit) *dto.WeeklyLimitResponse {
	if limit == nil {
		return nil
	}

	return &dto.WeeklyLimitResponse{
		ID:                  limit.ID,
		AppointmentType:     string(limit.AppointmentType),
		MaxAppointments:     limit.MaxAppointmentsPerWeek,
		SlotDurationMinutes: scheduling.SlotDuration(limit.MaxAppointmentsPerWeek),
		UpdatedAt:           limit.UpdatedAt,
	}
}

// WeeklyLimitsToResponses converts a slice of WeeklyScheduleLimit entities to slice of WeeklyLimitResponse DTOs
func WeeklyLimitsToResponses(limits []entity.WeeklyScheduleLimit) []dto.WeeklyLimitResponse {
	responses := make([]dto.WeeklyLimitResponse, len(limits))
	for i, limit := range limits {
		responses[i] = *WeeklyLimitToResponse(&limit)
	}
	return responses
}

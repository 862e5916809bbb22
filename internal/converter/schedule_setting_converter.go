package converter

import (
	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleSettingToResponse converts a ScheduleSetting entity to ScheduleSettingResponse DTO
func ScheduleSettingToResponse(setting *entity.ScheduleSetting) *dto.ScheduleSettingResponse {
	if setting == nil {
		return nil
	}

	response := &dto.ScheduleSettingResponse{
		ID:                     setting.ID,
		CampusID:               setting.CampusID,
		DayOfWeek:              setting.DayOfWeek,
		StartTime:              setting.StartTime,
		EndTime:                setting.EndTime,
		MaxAppointmentsPerSlot: setting.MaxAppointmentsPerSlot,
		AppointmentType:        string(setting.AppointmentType),
		IsActive:               setting.IsActive,
		CreatedAt:              setting.CreatedAt,
		UpdatedAt:              setting.UpdatedAt,
	}

	if setting.Campus.ID != uuid.Nil {
		response.Campus = CampusToResponse(&setting.Campus)
	}

	return response
}

// ScheduleSettingsToResponses converts a slice of ScheduleSetting entities to slice of ScheduleSettingResponse DTOs
func ScheduleSettingsToResponses(settings []entity.ScheduleSetting) []dto.ScheduleSettingResponse {
	responses := make([]dto.ScheduleSettingResponse, len(settings))
	for i, setting := range settings {
		resp := ScheduleSettingToResponse(&setting)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

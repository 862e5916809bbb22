package converter

import (
	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/scheduling"
)

// SlotsToResponses converts computed slots to SlotResponse DTOs
func SlotsToResponses(slots []scheduling.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.SlotResponse{
			StartTime: slot.Start,
			EndTime:   slot.End,
			Label:     slot.Label,
		}
	}
	return responses
}

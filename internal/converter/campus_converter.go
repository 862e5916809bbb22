package converter

import (
	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/domain/entity"
)

// CampusToResponse converts a Campus entity to CampusResponse DTO
func CampusToResponse(campus *entity.Campus) *dto.CampusResponse {
	if campus == nil {
		return nil
	}

	return &dto.CampusResponse{
		ID:        campus.ID,
		Name:      campus.Name,
		Address:   campus.Address,
		CreatedAt: campus.CreatedAt,
	}
}

// CampusesToResponses converts a slice of Campus entities to slice of CampusResponse DTOs
func CampusesToResponses(campuses []entity.Campus) []dto.CampusResponse {
	responses := make([]dto.CampusResponse, len(campuses))
	for i, campus := range campuses {
		responses[i] = *CampusToResponse(&campus)
	}
	return responses
}

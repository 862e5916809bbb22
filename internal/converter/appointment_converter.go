package converter

import (
	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		CampusID:        appointment.CampusID,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		StartTime:       appointment.StartTime,
		EndTime:         appointment.EndTime,
		AppointmentType: string(appointment.AppointmentType),
		Status:          string(appointment.Status),
		PatientName:     appointment.PatientName,
		PatientEmail:    appointment.PatientEmail,
		PatientContact:  appointment.PatientContact,
		ChiefComplaint:  appointment.ChiefComplaint,
		DoctorID:        appointment.DoctorID,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	// Include relations only when preloaded
	if appointment.Campus.ID != uuid.Nil {
		response.Campus = CampusToResponse(&appointment.Campus)
	}
	if appointment.Doctor != nil {
		response.Doctor = DoctorToResponse(appointment.Doctor)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

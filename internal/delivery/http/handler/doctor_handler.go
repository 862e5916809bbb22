package handler

import (
	"net/http"

	"campus-clinic-scheduler/internal/usecase"
	"campus-clinic-scheduler/pkg/response"

	"github.com/google/uuid"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

// GetAllDoctors lists doctors, optionally filtered by ?campus_id=
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("campus_id"); raw != "" {
		campusID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid campus ID", nil)
			return
		}

		doctors, err := h.doctorUsecase.GetDoctorsByCampus(r.Context(), campusID)
		if err != nil {
			response.InternalServerError(w, "Failed to list doctors")
			return
		}
		response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
		return
	}

	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

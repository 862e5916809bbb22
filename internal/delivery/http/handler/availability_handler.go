package handler

import (
	"net/http"

	"campus-clinic-scheduler/internal/domain/entity"
	"campus-clinic-scheduler/internal/usecase"
	"campus-clinic-scheduler/pkg/response"

	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetSlotGrid handles GET /slots?campus_id=&date=&type=
func (h *AvailabilityHandler) GetSlotGrid(w http.ResponseWriter, r *http.Request) {
	campusID, err := uuid.Parse(r.URL.Query().Get("campus_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid campus ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	appointmentType := entity.AppointmentType(r.URL.Query().Get("type"))
	if appointmentType != entity.AppointmentTypePhysicalExam && appointmentType != entity.AppointmentTypeConsultation {
		response.Error(w, http.StatusBadRequest, "Invalid appointment type", nil)
		return
	}

	grid, err := h.availabilityUsecase.GetSlotGrid(r.Context(), campusID, date, appointmentType)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to compute slot grid")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot grid retrieved successfully", grid)
}

// CheckSlot handles GET /slots/availability?campus_id=&date=&start_time=&type=
func (h *AvailabilityHandler) CheckSlot(w http.ResponseWriter, r *http.Request) {
	campusID, err := uuid.Parse(r.URL.Query().Get("campus_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid campus ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	startTime := r.URL.Query().Get("start_time")
	appointmentType := entity.AppointmentType(r.URL.Query().Get("type"))
	if appointmentType != entity.AppointmentTypePhysicalExam && appointmentType != entity.AppointmentTypeConsultation {
		response.Error(w, http.StatusBadRequest, "Invalid appointment type", nil)
		return
	}

	availability, err := h.availabilityUsecase.IsSlotAvailable(r.Context(), campusID, date, startTime, appointmentType)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to check slot availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot availability retrieved successfully", availability)
}

// GetWeekBoard handles GET /board?campus_id=&week_start=
func (h *AvailabilityHandler) GetWeekBoard(w http.ResponseWriter, r *http.Request) {
	campusID, err := uuid.Parse(r.URL.Query().Get("campus_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid campus ID", nil)
		return
	}

	board, err := h.availabilityUsecase.GetWeekBoard(r.Context(), campusID, r.URL.Query().Get("week_start"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid week start, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to load week board")
		}
		return
	}

	response.Success(w, http.StatusOK, "Week board retrieved successfully", board)
}

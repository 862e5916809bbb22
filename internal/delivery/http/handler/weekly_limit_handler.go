package handler

import (
	"encoding/json"
	"net/http"

	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/domain/entity"
	"campus-clinic-scheduler/internal/usecase"
	"campus-clinic-scheduler/pkg/response"
	"campus-clinic-scheduler/pkg/validator"

	"github.com/gorilla/mux"
)

type WeeklyLimitHandler struct {
	limitUsecase usecase.WeeklyLimitUsecase
	validator    *validator.CustomValidator
}

func NewWeeklyLimitHandler(limitUsecase usecase.WeeklyLimitUsecase, validator *validator.CustomValidator) *WeeklyLimitHandler {
	return &WeeklyLimitHandler{
		limitUsecase: limitUsecase,
		validator:    validator,
	}
}

func (h *WeeklyLimitHandler) GetAllLimits(w http.ResponseWriter, r *http.Request) {
	limits, err := h.limitUsecase.GetAllLimits(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list limits")
		return
	}

	response.Success(w, http.StatusOK, "Limits retrieved successfully", limits)
}

func (h *WeeklyLimitHandler) GetLimit(w http.ResponseWriter, r *http.Request) {
	appointmentType, ok := parseAppointmentType(mux.Vars(r)["type"])
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment type", nil)
		return
	}

	limit, err := h.limitUsecase.GetLimit(r.Context(), appointmentType)
	if err != nil {
		switch err {
		case usecase.ErrLimitNotFound:
			response.NotFound(w, "Limit not found")
		default:
			response.InternalServerError(w, "Failed to get limit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Limit retrieved successfully", limit)
}

func (h *WeeklyLimitHandler) UpdateLimit(w http.ResponseWriter, r *http.Request) {
	appointmentType, ok := parseAppointmentType(mux.Vars(r)["type"])
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment type", nil)
		return
	}

	var req dto.UpdateWeeklyLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	limit, err := h.limitUsecase.UpdateLimit(r.Context(), appointmentType, &req)
	if err != nil {
		switch err {
		case usecase.ErrLimitNotFound:
			response.NotFound(w, "Limit not found")
		default:
			response.InternalServerError(w, "Failed to update limit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Limit updated successfully", limit)
}

func parseAppointmentType(raw string) (entity.AppointmentType, bool) {
	switch entity.AppointmentType(raw) {
	case entity.AppointmentTypePhysicalExam:
		return entity.AppointmentTypePhysicalExam, true
	case entity.AppointmentTypeConsultation:
		return entity.AppointmentTypeConsultation, true
	default:
		return "", false
	}
}

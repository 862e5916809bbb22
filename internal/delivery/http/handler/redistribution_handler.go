package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/scheduling"
	"campus-clinic-scheduler/internal/usecase"
	"campus-clinic-scheduler/pkg/response"
	"campus-clinic-scheduler/pkg/validator"
)

type RedistributionHandler struct {
	redistributionUsecase usecase.RedistributionUsecase
	validator             *validator.CustomValidator
}

func NewRedistributionHandler(redistributionUsecase usecase.RedistributionUsecase, validator *validator.CustomValidator) *RedistributionHandler {
	return &RedistributionHandler{
		redistributionUsecase: redistributionUsecase,
		validator:             validator,
	}
}

// Redistribute handles POST /schedule/redistribute
func (h *RedistributionHandler) Redistribute(w http.ResponseWriter, r *http.Request) {
	var req dto.RedistributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.redistributionUsecase.Redistribute(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Redistribution completed successfully", result)
}

// MarkHoliday handles POST /schedule/holidays
func (h *RedistributionHandler) MarkHoliday(w http.ResponseWriter, r *http.Request) {
	var req dto.MarkHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.redistributionUsecase.MarkHoliday(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Holiday marked and appointments moved", result)
}

func (h *RedistributionHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidDate):
		response.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil)
	case errors.Is(err, scheduling.ErrCalendarFullyClosed):
		response.Error(w, http.StatusBadRequest, "Calendar config hides all seven weekdays", nil)
	default:
		response.InternalServerError(w, "Failed to redistribute appointments")
	}
}

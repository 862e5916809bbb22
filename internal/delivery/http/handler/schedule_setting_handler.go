package handler

import (
	"encoding/json"
	"net/http"

	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/usecase"
	"campus-clinic-scheduler/pkg/response"
	"campus-clinic-scheduler/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ScheduleSettingHandler struct {
	settingUsecase usecase.ScheduleSettingUsecase
	validator      *validator.CustomValidator
}

func NewScheduleSettingHandler(settingUsecase usecase.ScheduleSettingUsecase, validator *validator.CustomValidator) *ScheduleSettingHandler {
	return &ScheduleSettingHandler{
		settingUsecase: settingUsecase,
		validator:      validator,
	}
}

func (h *ScheduleSettingHandler) CreateSetting(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	setting, err := h.settingUsecase.CreateSetting(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCampusNotFound:
			response.NotFound(w, "Campus not found")
		case usecase.ErrSettingExists:
			response.Conflict(w, "A setting already exists for this campus and weekday")
		case usecase.ErrInvalidTimeSpan:
			response.Error(w, http.StatusBadRequest, "Start time must be before end time", nil)
		default:
			response.InternalServerError(w, "Failed to create schedule setting")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Schedule setting created successfully", setting)
}

func (h *ScheduleSettingHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid setting ID", nil)
		return
	}

	setting, err := h.settingUsecase.GetSetting(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSettingNotFound:
			response.NotFound(w, "Schedule setting not found")
		default:
			response.InternalServerError(w, "Failed to get schedule setting")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule setting retrieved successfully", setting)
}

func (h *ScheduleSettingHandler) GetAllSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingUsecase.GetAllSettings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list schedule settings")
		return
	}

	response.Success(w, http.StatusOK, "Schedule settings retrieved successfully", settings)
}

func (h *ScheduleSettingHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid setting ID", nil)
		return
	}

	var req dto.UpdateScheduleSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	setting, err := h.settingUsecase.UpdateSetting(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSettingNotFound:
			response.NotFound(w, "Schedule setting not found")
		case usecase.ErrInvalidTimeSpan:
			response.Error(w, http.StatusBadRequest, "Start time must be before end time", nil)
		default:
			response.InternalServerError(w, "Failed to update schedule setting")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule setting updated successfully", setting)
}

func (h *ScheduleSettingHandler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid setting ID", nil)
		return
	}

	if err := h.settingUsecase.DeleteSetting(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrSettingNotFound:
			response.NotFound(w, "Schedule setting not found")
		default:
			response.InternalServerError(w, "Failed to delete schedule setting")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule setting deleted successfully", nil)
}

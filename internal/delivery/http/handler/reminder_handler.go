package handler

import (
	"encoding/json"
	"net/http"

	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/usecase"
	"campus-clinic-scheduler/pkg/response"
	"campus-clinic-scheduler/pkg/validator"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
	validator       *validator.CustomValidator
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase, validator *validator.CustomValidator) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
		validator:       validator,
	}
}

// SendReminders handles POST /reminders
func (h *ReminderHandler) SendReminders(w http.ResponseWriter, r *http.Request) {
	var req dto.SendRemindersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.reminderUsecase.SendReminders(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid target date, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to send reminders")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reminder run completed", result)
}

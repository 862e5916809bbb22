package handler

import (
	"net/http"

	"campus-clinic-scheduler/internal/usecase"
	"campus-clinic-scheduler/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CampusHandler struct {
	campusUsecase usecase.CampusUsecase
}

func NewCampusHandler(campusUsecase usecase.CampusUsecase) *CampusHandler {
	return &CampusHandler{
		campusUsecase: campusUsecase,
	}
}

func (h *CampusHandler) GetAllCampuses(w http.ResponseWriter, r *http.Request) {
	campuses, err := h.campusUsecase.GetAllCampuses(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list campuses")
		return
	}

	response.Success(w, http.StatusOK, "Campuses retrieved successfully", campuses)
}

func (h *CampusHandler) GetCampus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid campus ID", nil)
		return
	}

	campus, err := h.campusUsecase.GetCampus(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrCampusNotFound:
			response.NotFound(w, "Campus not found")
		default:
			response.InternalServerError(w, "Failed to get campus")
		}
		return
	}

	response.Success(w, http.StatusOK, "Campus retrieved successfully", campus)
}

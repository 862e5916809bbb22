package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type CampusResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CampusListResponse struct {
	Campuses []CampusResponse `json:"campuses"`
	Total    int              `json:"total"`
}

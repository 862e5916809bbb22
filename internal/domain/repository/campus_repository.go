package repository

import (
	"campus-clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampusRepository interface {
	FindAll(db *gorm.DB) ([]entity.Campus, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Campus, error)
}

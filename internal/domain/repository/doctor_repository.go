package repository

import (
	"campus-clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	FindActiveByCampus(db *gorm.DB, campusID uuid.UUID) ([]entity.Doctor, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
}

package repository

import (
	"errors"

	"campus-clinic-scheduler/internal/domain/entity"
	domainRepo "campus-clinic-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type campusRepository struct{}

func NewCampusRepository() domainRepo.CampusRepository {
	return &campusRepository{}
}

func (r *campusRepository) FindAll(db *gorm.DB) ([]entity.Campus, error) {
	var campuses []entity.Campus
	err := db.Order("name ASC").Find(&campuses).Error
	if err != nil {
		return nil, err
	}
	return campuses, nil
}

func (r *campusRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Campus, error) {
	var campus entity.Campus
	err := db.Where("id = ?", id).First(&campus).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campus, nil
}

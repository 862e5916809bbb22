package usecase

import (
	"context"

	"campus-clinic-scheduler/internal/converter"
	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CampusUsecase interface {
	GetAllCampuses(ctx context.Context) (*dto.CampusListResponse, error)
	GetCampus(ctx context.Context, id uuid.UUID) (*dto.CampusResponse, error)
}

type campusUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	campusRepo repository.CampusRepository
}

func NewCampusUsecase(db *gorm.DB, log *logrus.Logger, campusRepo repository.CampusRepository) CampusUsecase {
	return &campusUsecase{
		db:         db,
		log:        log,
		campusRepo: campusRepo,
	}
}

func (u *campusUsecase) GetAllCampuses(ctx context.Context) (*dto.CampusListResponse, error) {
	campuses, err := u.campusRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all campuses: %+v", err)
		return nil, err
	}

	return &dto.CampusListResponse{
		Campuses: converter.CampusesToResponses(campuses),
		Total:    len(campuses),
	}, nil
}

func (u *campusUsecase) GetCampus(ctx context.Context, id uuid.UUID) (*dto.CampusResponse, error) {
	campus, err := u.campusRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find campus %s: %+v", id, err)
		return nil, err
	}
	if campus == nil {
		return nil, ErrCampusNotFound
	}
	return converter.CampusToResponse(campus), nil
}

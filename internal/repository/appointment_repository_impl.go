package repository

import (
	"errors"
	"time"

	"campus-clinic-scheduler/internal/domain/entity"
	domainRepo "campus-clinic-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Campus").Preload("Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Find(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if filter.CampusID != nil {
			query = query.Where("campus_id = ?", *filter.CampusID)
		}
		if filter.Date != "" {
			query = query.Where("appointment_date = ?", filter.Date)
		}
		if filter.DateFrom != "" {
			query = query.Where("appointment_date >= ?", filter.DateFrom)
		}
		if filter.DateTo != "" {
			query = query.Where("appointment_date <= ?", filter.DateTo)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.StartTimeGte != "" {
			query = query.Where("start_time >= ?", filter.StartTimeGte)
		}
	}

	err := query.Order("appointment_date ASC, start_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindForReschedule(db *gorm.DB, campusID uuid.UUID, date time.Time, fromTime string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("appointment_date = ?", date.Format("2006-01-02")).
		Where("campus_id = ?", campusID).
		Where("start_time >= ?", fromTime).
		Where("status = ?", entity.AppointmentStatusScheduled).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindScheduledFrom(db *gorm.DB, campusID uuid.UUID, fromDate time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("campus_id = ?", campusID).
		Where("appointment_date >= ?", fromDate.Format("2006-01-02")).
		Where("status = ?", entity.AppointmentStatusScheduled).
		Order("appointment_date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountInSlot(db *gorm.DB, campusID uuid.UUID, date time.Time, slotStart, slotEnd string) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("campus_id = ?", campusID).
		Where("appointment_date = ?", date.Format("2006-01-02")).
		Where("start_time >= ? AND start_time < ?", slotStart, slotEnd).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) UpdateSlot(db *gorm.DB, id uuid.UUID, date time.Time, startTime, endTime string) error {
	result := db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"appointment_date": date.Format("2006-01-02"),
			"start_time":       startTime,
			"end_time":         endTime,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Campus", "Doctor").Save(appointment).Error
}

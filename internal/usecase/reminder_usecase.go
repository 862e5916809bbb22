package usecase

import (
	"context"
	"fmt"
	"time"

	"campus-clinic-scheduler/internal/delivery/dto"
	"campus-clinic-scheduler/internal/domain/entity"
	"campus-clinic-scheduler/internal/domain/repository"
	"campus-clinic-scheduler/internal/scheduling"
	"campus-clinic-scheduler/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReminderUsecase interface {
	SendReminders(ctx context.Context, req *dto.SendRemindersRequest) (*dto.SendRemindersResponse, error)
}

type reminderUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	mailClient      *service.MailClient
	auditService    service.AuditService
}

func NewReminderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	mailClient *service.MailClient,
	auditService service.AuditService,
) ReminderUsecase {
	return &reminderUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		mailClient:      mailClient,
		auditService:    auditService,
	}
}

// SendReminders emails every scheduled patient on the target date who left
// an email address. One failed send doesn't stop the run; per-address
// outcomes are tallied in the response.
func (u *reminderUsecase) SendReminders(ctx context.Context, req *dto.SendRemindersRequest) (*dto.SendRemindersResponse, error) {
	targetDate, err := resolveTargetDate(req.TargetDate, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.Find(u.db.WithContext(ctx), &entity.AppointmentFilter{
		CampusID: &req.CampusID,
		Date:     targetDate,
		Status:   entity.AppointmentStatusScheduled,
	})
	if err != nil {
		u.log.Warnf("Failed to find appointments for reminders on %s: %+v", targetDate, err)
		return nil, err
	}

	result := &dto.SendRemindersResponse{}
	for _, appointment := range appointments {
		if appointment.PatientEmail == nil || *appointment.PatientEmail == "" {
			result.Skipped++
			continue
		}

		subject := fmt.Sprintf("Clinic appointment reminder for %s", targetDate)
		body := reminderBody(&appointment)
		if err := u.mailClient.Send(ctx, *appointment.PatientEmail, subject, body); err != nil {
			u.log.Warnf("Failed to send reminder for appointment %s: %+v", appointment.ID, err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	userID := userIDOrNil(ctx)
	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), userID, entity.AuditActionRemindersSent, "reminders", targetDate, result); err != nil {
		u.log.Warnf("Failed to audit reminder run (non-fatal): %+v", err)
	}

	u.log.Infof("Reminders for %s: sent=%d, skipped=%d, failed=%d", targetDate, result.Sent, result.Skipped, result.Failed)
	return result, nil
}

// resolveTargetDate accepts "today", "tomorrow" or a literal YYYY-MM-DD date.
func resolveTargetDate(raw string, now time.Time) (string, error) {
	switch raw {
	case "today":
		return now.Format(scheduling.DateLayout), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format(scheduling.DateLayout), nil
	}
	if _, err := time.Parse(scheduling.DateLayout, raw); err != nil {
		return "", ErrInvalidDate
	}
	return raw, nil
}

func reminderBody(appointment *entity.Appointment) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>This is a reminder of your clinic appointment on <strong>%s</strong> at <strong>%s</strong>.</p><p>Please arrive 10 minutes early.</p>",
		appointment.PatientName,
		appointment.AppointmentDate.Format(scheduling.DateLayout),
		appointment.StartTime,
	)
}

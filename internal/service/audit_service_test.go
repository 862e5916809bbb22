package service

import (
	"context"
	"errors"
	"testing"

	"campus-clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type capturingAuditRepo struct {
	created []*entity.AuditLog
	err     error
}

func (r *capturingAuditRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, log)
	return nil
}

func (r *capturingAuditRepo) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	return nil, nil
}

func (r *capturingAuditRepo) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	return nil, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestAuditService_TrailEntryShape(t *testing.T) {
	repo := &capturingAuditRepo{}
	svc := NewAuditService(nil, quietLogger(), repo)
	userID := uuid.New()

	if err := svc.LogUpdate(context.Background(), nil, &userID, entity.AuditActionLimitUpdate, "weekly_schedule_limit", "consultation", 20, 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 trail entry, got %d", len(repo.created))
	}

	got := repo.created[0]
	if got.Action != string(entity.AuditActionLimitUpdate) {
		t.Errorf("action = %q, want %q", got.Action, entity.AuditActionLimitUpdate)
	}
	if got.UserID == nil || *got.UserID != userID {
		t.Errorf("user_id = %v, want %s", got.UserID, userID)
	}
	if got.Metadata["entity"] != "weekly_schedule_limit" || got.Metadata["entity_id"] != "consultation" {
		t.Errorf("metadata entity fields = %v", got.Metadata)
	}
	if got.Metadata["old_value"] != 20 || got.Metadata["new_value"] != 30 {
		t.Errorf("metadata values = old %v new %v, want 20 and 30", got.Metadata["old_value"], got.Metadata["new_value"])
	}
}

func TestAuditService_CreateAndDeleteSides(t *testing.T) {
	repo := &capturingAuditRepo{}
	svc := NewAuditService(nil, quietLogger(), repo)

	if err := svc.LogCreate(context.Background(), nil, nil, entity.AuditActionSettingCreate, "schedule_setting", "abc", "row"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.LogDelete(context.Background(), nil, nil, entity.AuditActionSettingDelete, "schedule_setting", "abc", "row"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created := repo.created[0]
	if created.Metadata["old_value"] != nil || created.Metadata["new_value"] != "row" {
		t.Errorf("create entry sides = old %v new %v, want nil and row", created.Metadata["old_value"], created.Metadata["new_value"])
	}

	deleted := repo.created[1]
	if deleted.Metadata["old_value"] != "row" || deleted.Metadata["new_value"] != nil {
		t.Errorf("delete entry sides = old %v new %v, want row and nil", deleted.Metadata["old_value"], deleted.Metadata["new_value"])
	}
	if deleted.UserID != nil {
		t.Errorf("anonymous entry should carry no user_id, got %v", deleted.UserID)
	}
}

func TestAuditService_PropagatesWriteError(t *testing.T) {
	repoErr := errors.New("insert failed")
	svc := NewAuditService(nil, quietLogger(), &capturingAuditRepo{err: repoErr})

	if err := svc.LogCreate(context.Background(), nil, nil, entity.AuditActionAppointmentCreate, "appointment", "x", nil); !errors.Is(err, repoErr) {
		t.Errorf("error = %v, want %v", err, repoErr)
	}
}

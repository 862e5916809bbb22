package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a clinic physician available for assignment to appointments.
// Identity and login live in the external identity service; only the
// fields the scheduler needs are kept here.
type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName       string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Specialization *string   `gorm:"type:varchar(255)" json:"specialization,omitempty"`
	LicenseNumber  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"license_number"`
	CampusID       uuid.UUID `gorm:"type:uuid;not null;index" json:"campus_id"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Campus Campus `gorm:"foreignKey:CampusID" json:"campus,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Campus is a university site with its own clinic calendar.
type Campus struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Campus) TableName() string {
	return "campuses"
}

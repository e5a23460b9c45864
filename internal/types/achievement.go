package types

import (
	"time"

	"github.com/google/uuid"
)

type Achievement struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Date      time.Time `gorm:"not null;column:date" json:"date"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Achievement) TableName() string {
	return "achievements"
}

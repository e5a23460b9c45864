package types

import (
	"time"

	"github.com/google/uuid"
)

type LearningPathEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Month     string    `gorm:"not null;column:month" json:"month"`
	Progress  int       `gorm:"column:progress" json:"progress"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (LearningPathEntry) TableName() string {
	return "learning_path"
}

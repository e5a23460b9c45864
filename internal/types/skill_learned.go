package types

import (
	"time"

	"github.com/google/uuid"
)

type SkillLearned struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Level     int       `gorm:"column:level" json:"level"`
	Completed bool      `gorm:"column:completed" json:"completed"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (SkillLearned) TableName() string {
	return "skills_learned"
}

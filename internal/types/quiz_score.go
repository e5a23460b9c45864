package types

import (
	"time"

	"github.com/google/uuid"
)

type QuizScore struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	QuizName  string    `gorm:"not null;column:quiz_name" json:"quiz_name"`
	Score     string    `gorm:"column:score" json:"score"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (QuizScore) TableName() string {
	return "quiz_scores"
}

package types

import (
	"time"

	"github.com/google/uuid"
)

// SkillMatch rows collapse client-side into a skill-name -> percentage map.
// The store has no dedup constraint on (user_id, skill_name).
type SkillMatch struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	SkillName       string    `gorm:"not null;column:skill_name" json:"skill_name"`
	MatchPercentage int       `gorm:"column:match_percentage" json:"match_percentage"`
	CreatedAt       time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (SkillMatch) TableName() string {
	return "skill_matches"
}

package types

import (
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

// User is a learner row. Created externally; this service only reads it.
// Score columns are text because the hosted store returns numerics as
// strings in places; coercion happens at view-model shaping time.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Email       string    `gorm:"not null;column:email" json:"email"`
	Role        string    `gorm:"not null;default:user;column:role" json:"role"`
	AvatarURL   string    `gorm:"column:avatar_url" json:"avatar_url"`
	ResumeScore string    `gorm:"column:resume_score" json:"resume_score"`
	XPPoints    int       `gorm:"column:xp_points" json:"xp_points"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the directory-listing row (name, email, role only).
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

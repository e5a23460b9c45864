package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/types"
)

// RecentAchievement is an achievement joined with the owner's display name.
type RecentAchievement struct {
	Name     string    `gorm:"column:name" json:"name"`
	Date     time.Time `gorm:"column:date" json:"date"`
	UserName string    `gorm:"column:user_name" json:"user_name"`
}

type AchievementRepo interface {
	// ListByUser returns the user's achievements newest first.
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Achievement, error)
	// ListRecent returns the newest achievements across all users.
	ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]RecentAchievement, error)
}

type achievementRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAchievementRepo(db *gorm.DB, baseLog *logger.Logger) AchievementRepo {
	repoLog := baseLog.With("repo", "AchievementRepo")
	return &achievementRepo{db: db, log: repoLog}
}

func (ar *achievementRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Achievement, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []types.Achievement
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *achievementRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]RecentAchievement, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []RecentAchievement
	if err := transaction.WithContext(ctx).
		Model(&types.Achievement{}).
		Select("achievements.name", "achievements.date", "users.name AS user_name").
		Joins("INNER JOIN users ON users.id = achievements.user_id").
		Order("achievements.date DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

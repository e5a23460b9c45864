package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/types"
)

// RecentQuizScore is a quiz completion joined with the owner's display name.
type RecentQuizScore struct {
	QuizName  string    `gorm:"column:quiz_name" json:"quiz_name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UserName  string    `gorm:"column:user_name" json:"user_name"`
}

type QuizScoreRepo interface {
	// ListByUser returns the user's scores in creation order for trend display.
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.QuizScore, error)
	// ListRecent returns the newest completions across all users.
	ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]RecentQuizScore, error)
}

type quizScoreRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizScoreRepo(db *gorm.DB, baseLog *logger.Logger) QuizScoreRepo {
	repoLog := baseLog.With("repo", "QuizScoreRepo")
	return &quizScoreRepo{db: db, log: repoLog}
}

func (qr *quizScoreRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.QuizScore, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	var results []types.QuizScore
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (qr *quizScoreRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]RecentQuizScore, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	var results []RecentQuizScore
	if err := transaction.WithContext(ctx).
		Model(&types.QuizScore{}).
		Select("quiz_scores.quiz_name", "quiz_scores.created_at", "users.name AS user_name").
		Joins("INNER JOIN users ON users.id = quiz_scores.user_id").
		Order("quiz_scores.created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

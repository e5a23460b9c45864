package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/types"
)

type LearningPathRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.LearningPathEntry, error)
}

type learningPathRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPathRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathRepo {
	repoLog := baseLog.With("repo", "LearningPathRepo")
	return &learningPathRepo{db: db, log: repoLog}
}

func (lr *learningPathRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.LearningPathEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []types.LearningPathEntry
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

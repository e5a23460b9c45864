package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/types"
)

type SkillLearnedRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.SkillLearned, error)
}

type skillLearnedRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillLearnedRepo(db *gorm.DB, baseLog *logger.Logger) SkillLearnedRepo {
	repoLog := baseLog.With("repo", "SkillLearnedRepo")
	return &skillLearnedRepo{db: db, log: repoLog}
}

func (sr *skillLearnedRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.SkillLearned, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []types.SkillLearned
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/types"
)

type SkillMatchRepo interface {
	// ListByUser returns rows in skill-name order; duplicates are possible
	// and the shaper resolves them last-write-wins.
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.SkillMatch, error)
}

type skillMatchRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillMatchRepo(db *gorm.DB, baseLog *logger.Logger) SkillMatchRepo {
	repoLog := baseLog.With("repo", "SkillMatchRepo")
	return &skillMatchRepo{db: db, log: repoLog}
}

func (sr *skillMatchRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.SkillMatch, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []types.SkillMatch
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("skill_name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

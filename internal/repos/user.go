package repos

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/types"
)

// ErrNotFound is the repo-level sentinel for a missing row.
var ErrNotFound = errors.New("not found")

type UserRepo interface {
	// GetByName matches case-insensitively; the user's name is the lookup key.
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.User, error)
	// ListSummaries returns name/email/role for every user ordered by name.
	ListSummaries(ctx context.Context, tx *gorm.DB) ([]types.UserSummary, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var result types.User
	err := transaction.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (ur *userRepo) ListSummaries(ctx context.Context, tx *gorm.DB) ([]types.UserSummary, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var results []types.UserSummary
	if err := transaction.WithContext(ctx).
		Model(&types.User{}).
		Select("name", "email", "role").
		Order("name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

package db

import (
	"fmt"
	"net/url"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/types"
	"github.com/skillforge/dashboard-backend/internal/utils"
)

// ErrMissingCredentials is returned when the store endpoint or the
// privileged access key is absent from the environment. The server keeps
// running and answers 500 on data routes instead of crashing.
var ErrMissingCredentials = fmt.Errorf("missing database credentials")

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewPostgresService connects with the service-role credentials. The store
// endpoint comes from DATABASE_URL and the privileged key from
// SERVICE_ROLE_KEY; the key is injected as the service_role password so the
// URL itself never carries a secret.
func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	databaseURL := utils.GetEnv("DATABASE_URL", "", log)
	serviceKey := utils.GetEnv("SERVICE_ROLE_KEY", "", log)
	if databaseURL == "" || serviceKey == "" {
		return nil, ErrMissingCredentials
	}

	dsn, err := buildDSN(databaseURL, serviceKey)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	serviceLog.Info("Connecting to Postgres...")
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := gormDB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: gormDB, log: serviceLog}, nil
}

func buildDSN(databaseURL, serviceKey string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", err
	}
	u.User = url.UserPassword("service_role", serviceKey)
	return u.String(), nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.QuizScore{},
		&types.SkillLearned{},
		&types.SkillMatch{},
		&types.LearningPathEntry{},
		&types.Achievement{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	for _, fk := range []struct{ table, constraint string }{
		{"quiz_scores", "fk_quiz_scores_user_id"},
		{"skills_learned", "fk_skills_learned_user_id"},
		{"skill_matches", "fk_skill_matches_user_id"},
		{"learning_path", "fk_learning_path_user_id"},
		{"achievements", "fk_achievements_user_id"},
	} {
		stmt := fmt.Sprintf(`
			ALTER TABLE %q
			ADD CONSTRAINT %q
			FOREIGN KEY ("user_id")
			REFERENCES "users"("id")
			ON DELETE CASCADE
		`, fk.table, fk.constraint)
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", fk.constraint, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisbus "github.com/skillforge/dashboard-backend/internal/clients/redis"
	"github.com/skillforge/dashboard-backend/internal/db"
	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/sse"
	"github.com/skillforge/dashboard-backend/internal/types"
)

// Seeds the demo learner rows the dashboard reads. The API server itself
// never writes; this is the local stand-in for the hosted store's external
// row lifecycle.
func main() {
	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Best effort: without Redis the rows still land, the push feed just
	// stays quiet.
	bus, busErr := redisbus.NewActivityBus(log)
	if busErr != nil {
		log.Warn("Activity bus unavailable, insert events will not be published", "error", busErr)
	} else {
		defer bus.Close()
	}

	ctx := context.Background()
	for _, su := range seedUsers() {
		if err := seedOne(ctx, thePG, bus, su); err != nil {
			log.Error("Seeding failed", "user", su.user.Name, "error", err)
			os.Exit(1)
		}
		log.Info("Seeded user", "user", su.user.Name, "role", su.user.Role)
	}
}

type seedUser struct {
	user         types.User
	quizzes      []types.QuizScore
	skills       []types.SkillLearned
	matches      []types.SkillMatch
	path         []types.LearningPathEntry
	achievements []types.Achievement
}

func seedOne(ctx context.Context, gdb *gorm.DB, bus redisbus.ActivityBus, su seedUser) error {
	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := su.user
		user.ID = uuid.New()
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		for i := range su.quizzes {
			su.quizzes[i].ID = uuid.New()
			su.quizzes[i].UserID = user.ID
		}
		for i := range su.skills {
			su.skills[i].ID = uuid.New()
			su.skills[i].UserID = user.ID
		}
		for i := range su.matches {
			su.matches[i].ID = uuid.New()
			su.matches[i].UserID = user.ID
		}
		for i := range su.path {
			su.path[i].ID = uuid.New()
			su.path[i].UserID = user.ID
		}
		for i := range su.achievements {
			su.achievements[i].ID = uuid.New()
			su.achievements[i].UserID = user.ID
		}

		// gorm rejects Create on an empty slice; skip absent record sets.
		for _, batch := range []struct {
			rows any
			size int
		}{
			{&su.quizzes, len(su.quizzes)},
			{&su.skills, len(su.skills)},
			{&su.matches, len(su.matches)},
			{&su.path, len(su.path)},
			{&su.achievements, len(su.achievements)},
		} {
			if batch.size == 0 {
				continue
			}
			if err := tx.Create(batch.rows).Error; err != nil {
				return fmt.Errorf("create child rows: %w", err)
			}
		}

		if bus != nil {
			for _, a := range su.achievements {
				_ = bus.Publish(ctx, sse.Event{
					ID:     a.ID,
					Kind:   sse.EventAchievementInsert,
					Name:   user.Name,
					Action: fmt.Sprintf("Earned %s", a.Name),
					Time:   "just now",
				})
			}
			for _, q := range su.quizzes {
				_ = bus.Publish(ctx, sse.Event{
					ID:     q.ID,
					Kind:   sse.EventQuizInsert,
					Name:   user.Name,
					Action: fmt.Sprintf("Completed %s", q.QuizName),
					Time:   "just now",
				})
			}
		}
		return nil
	})
}

func seedUsers() []seedUser {
	now := time.Now()
	return []seedUser{
		{
			user: types.User{
				Name:        "yeswanth",
				Email:       "yeswanth@example.com",
				Role:        types.RoleAdmin,
				ResumeScore: "8.5",
				XPPoints:    82,
			},
			quizzes: []types.QuizScore{
				{QuizName: "JavaScript Basics", Score: "7.2", CreatedAt: now.Add(-40 * 24 * time.Hour)},
				{QuizName: "React Fundamentals", Score: "8.5", CreatedAt: now.Add(-30 * 24 * time.Hour)},
				{QuizName: "Node.js Intro", Score: "9.0", CreatedAt: now.Add(-20 * 24 * time.Hour)},
				{QuizName: "Database Design", Score: "8.7", CreatedAt: now.Add(-10 * 24 * time.Hour)},
			},
			skills: []types.SkillLearned{
				{Name: "JavaScript", Level: 75, Completed: true},
				{Name: "React", Level: 65, Completed: true},
				{Name: "Node.js", Level: 55, Completed: false},
			},
			matches: []types.SkillMatch{
				{SkillName: "JavaScript", MatchPercentage: 75},
				{SkillName: "React", MatchPercentage: 65},
				{SkillName: "Node.js", MatchPercentage: 55},
			},
			path: []types.LearningPathEntry{
				{Month: "Jan", Progress: 10, CreatedAt: now.Add(-150 * 24 * time.Hour)},
				{Month: "Feb", Progress: 25, CreatedAt: now.Add(-120 * 24 * time.Hour)},
				{Month: "Mar", Progress: 40, CreatedAt: now.Add(-90 * 24 * time.Hour)},
				{Month: "Apr", Progress: 55, CreatedAt: now.Add(-60 * 24 * time.Hour)},
			},
			achievements: []types.Achievement{
				{Name: "First Login", Date: now.Add(-150 * 24 * time.Hour)},
				{Name: "First Quiz", Date: now.Add(-40 * 24 * time.Hour)},
				{Name: "Skill Unlocked", Date: now.Add(-5 * time.Hour)},
			},
		},
		{
			user: types.User{
				Name:        "sarah",
				Email:       "sarah@example.com",
				Role:        "user",
				ResumeScore: "7.1",
				XPPoints:    58,
			},
			quizzes: []types.QuizScore{
				{QuizName: "React Quiz", Score: "8.0", CreatedAt: now.Add(-2 * time.Hour)},
				{QuizName: "Testing", Score: "7.8", CreatedAt: now.Add(-25 * time.Hour)},
			},
			skills: []types.SkillLearned{
				{Name: "React", Level: 60, Completed: true},
				{Name: "Python", Level: 45, Completed: false},
			},
			matches: []types.SkillMatch{
				{SkillName: "React", MatchPercentage: 70},
				{SkillName: "Python", MatchPercentage: 50},
			},
			path: []types.LearningPathEntry{
				{Month: "May", Progress: 20, CreatedAt: now.Add(-60 * 24 * time.Hour)},
				{Month: "Jun", Progress: 35, CreatedAt: now.Add(-30 * 24 * time.Hour)},
			},
			achievements: []types.Achievement{
				{Name: "JavaScript Badge", Date: now.Add(-5 * time.Minute)},
				{Name: "Profile Setup", Date: now.Add(-8 * 24 * time.Hour)},
			},
		},
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/skillforge/dashboard-backend/internal/clients/redis"
	"github.com/skillforge/dashboard-backend/internal/db"
	"github.com/skillforge/dashboard-backend/internal/handlers"
	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/repos"
	"github.com/skillforge/dashboard-backend/internal/server"
	"github.com/skillforge/dashboard-backend/internal/services"
	"github.com/skillforge/dashboard-backend/internal/sse"
	"github.com/skillforge/dashboard-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres. Missing credentials are not fatal: the server starts and
	// data routes answer 500 with an explicit message.
	var (
		dashboardService services.DashboardService
		directoryService services.DirectoryService
		activityService  services.ActivityService
	)
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		if errors.Is(err, db.ErrMissingCredentials) {
			log.Warn("DATABASE_URL or SERVICE_ROLE_KEY not set; data routes will report missing credentials")
		} else {
			log.Error("Postgres init failed", "error", err)
			os.Exit(1)
		}
	} else {
		if err := postgresService.AutoMigrateAll(); err != nil {
			log.Warn("Postgres auto migration failed", "error", err)
		}
		thePG := postgresService.DB()

		// Repos
		log.Info("Setting up repos from main...")
		userRepo := repos.NewUserRepo(thePG, log)
		quizRepo := repos.NewQuizScoreRepo(thePG, log)
		skillRepo := repos.NewSkillLearnedRepo(thePG, log)
		matchRepo := repos.NewSkillMatchRepo(thePG, log)
		pathRepo := repos.NewLearningPathRepo(thePG, log)
		achieveRepo := repos.NewAchievementRepo(thePG, log)

		// Services
		log.Info("Setting up services from main...")
		identityService := services.NewIdentityService(log, userRepo)
		dashboardService = services.NewDashboardService(log, identityService, userRepo, quizRepo, skillRepo, matchRepo, pathRepo, achieveRepo)
		directoryService = services.NewDirectoryService(log, identityService, userRepo)
		activityService = services.NewActivityService(log, quizRepo, achieveRepo)
	}

	// Activity push feed: SSE hub fed by the Redis bus. Best effort; the
	// dashboard works without it.
	hub := sse.NewHub(log)
	var streamHandler *handlers.StreamHandler
	if bus, err := redis.NewActivityBus(log); err != nil {
		log.Warn("Activity bus unavailable, push feed disabled", "error", err)
	} else {
		defer bus.Close()
		if err := bus.StartForwarder(context.Background(), hub.Broadcast); err != nil {
			log.Warn("Activity bus forwarder failed, push feed disabled", "error", err)
		} else {
			streamHandler = handlers.NewStreamHandler(log, hub)
		}
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		DashboardHandler: handlers.NewDashboardHandler(log, dashboardService),
		UsersHandler:     handlers.NewUsersHandler(log, directoryService),
		ActivityHandler:  handlers.NewActivityHandler(log, activityService),
		StreamHandler:    streamHandler,
	})

	listenAddr := utils.GetEnv("LISTEN_ADDR", ":8080", log)
	log.Info("Starting server", "addr", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

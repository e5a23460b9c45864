package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/skillforge/dashboard-backend/internal/handlers"
)

type RouterConfig struct {
	DashboardHandler *handlers.DashboardHandler
	UsersHandler     *handlers.UsersHandler
	ActivityHandler  *handlers.ActivityHandler
	StreamHandler    *handlers.StreamHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	// Data routes. All reads; the access layer never mutates learner rows.
	router.GET("/user-data", cfg.DashboardHandler.GetUserData)
	router.GET("/users", cfg.UsersHandler.GetUsers)
	router.GET("/recent-activity", cfg.ActivityHandler.GetRecentActivity)

	// Push feed, independent of the polling loop.
	if cfg.StreamHandler != nil {
		router.GET("/activity/stream", cfg.StreamHandler.ActivityStream)
	}

	return router
}

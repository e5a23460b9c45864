package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/services"
)

type ActivityHandler struct {
	log        *logger.Logger
	activities services.ActivityService
}

func NewActivityHandler(log *logger.Logger, activities services.ActivityService) *ActivityHandler {
	return &ActivityHandler{log: log.With("handler", "ActivityHandler"), activities: activities}
}

// GetRecentActivity serves GET /recent-activity: up to three cross-user
// entries ordered by their relative-time label.
func (ah *ActivityHandler) GetRecentActivity(c *gin.Context) {
	if ah.activities == nil {
		RespondMissingCredentials(c)
		return
	}

	entries, err := ah.activities.Recent(c.Request.Context())
	if err != nil {
		ah.log.Error("Error fetching recent activity", "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to fetch recent activity")
		return
	}
	RespondOK(c, entries)
}

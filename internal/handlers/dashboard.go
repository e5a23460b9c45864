package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/services"
	"github.com/skillforge/dashboard-backend/internal/types"
)

type DashboardHandler struct {
	log        *logger.Logger
	dashboards services.DashboardService
}

// NewDashboardHandler accepts a nil service when the store credentials were
// missing at startup; the handler then answers 500 on every request instead
// of crashing the process.
func NewDashboardHandler(log *logger.Logger, dashboards services.DashboardService) *DashboardHandler {
	return &DashboardHandler{log: log.With("handler", "DashboardHandler"), dashboards: dashboards}
}

// GetUserData serves GET /user-data?user=<name>&currentUser=<name>.
func (dh *DashboardHandler) GetUserData(c *gin.Context) {
	if dh.dashboards == nil {
		RespondMissingCredentials(c)
		return
	}

	targetName := c.Query("user")
	callerName := c.Query("currentUser")
	dh.log.Debug("Fetching data", "user", targetName, "requested_by", callerName)

	data, err := dh.dashboards.GetDashboard(c.Request.Context(), callerName, targetName)
	if err != nil {
		dh.handleError(c, err)
		return
	}
	RespondOK(c, data)
}

func (dh *DashboardHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrAccessDenied) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Access denied",
			"message": "You can only access your own dashboard data. Only admins can view other users.",
		})
		return
	}

	var notFound *services.UserNotFoundError
	if errors.As(err, &notFound) {
		available := notFound.AvailableUsers
		if available == nil {
			available = []types.UserSummary{}
		}
		c.JSON(http.StatusNotFound, gin.H{
			"error":          notFound.Error(),
			"isAdmin":        notFound.CallerIsAdmin,
			"availableUsers": available,
		})
		return
	}

	var readFailure *services.ReadFailureError
	if errors.As(err, &readFailure) {
		RespondError(c, http.StatusInternalServerError, readFailure.Error())
		return
	}

	dh.log.Error("Unexpected dashboard error", "error", err)
	RespondError(c, http.StatusInternalServerError, "Database connection failed")
}

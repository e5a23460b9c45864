package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/services"
)

type UsersHandler struct {
	log       *logger.Logger
	directory services.DirectoryService
}

func NewUsersHandler(log *logger.Logger, directory services.DirectoryService) *UsersHandler {
	return &UsersHandler{log: log.With("handler", "UsersHandler"), directory: directory}
}

// GetUsers serves GET /users?currentUser=<name>. A non-admin caller gets an
// empty list and an explanatory message with HTTP 200, never an error, so
// the client can render a friendly unauthorized state.
func (uh *UsersHandler) GetUsers(c *gin.Context) {
	if uh.directory == nil {
		RespondMissingCredentials(c)
		return
	}

	listing, err := uh.directory.List(c.Request.Context(), c.Query("currentUser"))
	if err != nil {
		uh.log.Error("Error fetching users", "error", err)
		RespondError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	RespondOK(c, listing)
}

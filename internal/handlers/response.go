package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const missingCredentialsMessage = "Missing database credentials"

// RespondError writes the flat error envelope the dashboard client expects.
// Raw store errors never reach the wire; callers pass a display message.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondMissingCredentials is the uniform answer on data routes when the
// store endpoint or service key was absent at startup.
func RespondMissingCredentials(c *gin.Context) {
	RespondError(c, http.StatusInternalServerError, missingCredentialsMessage)
}

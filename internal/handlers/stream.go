package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/sse"
)

type StreamHandler struct {
	log *logger.Logger
	hub *sse.Hub
}

func NewStreamHandler(log *logger.Logger, hub *sse.Hub) *StreamHandler {
	return &StreamHandler{log: log.With("handler", "StreamHandler"), hub: hub}
}

// ActivityStream serves GET /activity/stream: a server-sent-events feed of
// achievement and quiz inserts, independent of the client's polling loop.
func (sh *StreamHandler) ActivityStream(c *gin.Context) {
	client := sh.hub.NewClient()
	defer sh.hub.CloseClient(client)

	sh.hub.ServeHTTP(c.Writer, c.Request, client)
}

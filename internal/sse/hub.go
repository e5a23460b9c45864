package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillforge/dashboard-backend/internal/logger"
)

type EventKind string

const (
	EventAchievementInsert EventKind = "achievement_insert"
	EventQuizInsert        EventKind = "quiz_insert"
)

// Event is one insert notification pushed to the live activity feed. It
// carries a stable ID so a consumer could dedup by identifier rather than by
// display text; today's feed does not dedup.
type Event struct {
	ID     uuid.UUID `json:"id"`
	Kind   EventKind `json:"kind"`
	Name   string    `json:"name"`
	Action string    `json:"action"`
	Time   string    `json:"time"`
}

type Client struct {
	ID       uuid.UUID
	Outbound chan Event
	done     chan struct{}
}

// Hub fans insert events out to connected activity-feed streams. There is a
// single feed; per-channel subscriptions were not needed here.
type Hub struct {
	mu      sync.RWMutex
	log     *logger.Logger
	clients map[*Client]bool
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:     log.With("component", "ActivityHub"),
		clients: make(map[*Client]bool),
	}
}

func (hub *Hub) NewClient() *Client {
	client := &Client{
		ID:       uuid.New(),
		Outbound: make(chan Event, 10),
		done:     make(chan struct{}),
	}

	hub.mu.Lock()
	hub.clients[client] = true
	hub.mu.Unlock()

	hub.log.Debug("Activity client connected", "clientID", client.ID)
	return client
}

func (hub *Hub) Broadcast(ev Event) {
	hub.mu.RLock()
	defer hub.mu.RUnlock()

	for c := range hub.clients {
		select {
		case c.Outbound <- ev:
		default:
			hub.log.Warn("Dropping activity event; outbound buffer full", "clientID", c.ID)
		}
	}
}

func (hub *Hub) CloseClient(client *Client) {
	hub.mu.Lock()
	if _, ok := hub.clients[client]; ok {
		delete(hub.clients, client)
		close(client.done)
	}
	hub.mu.Unlock()

	hub.log.Debug("Activity client disconnected", "clientID", client.ID)
}

func (hub *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request, client *Client) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}
	ctx := r.Context()

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			hub.log.Debug("Activity client context done", "clientID", client.ID, "err", ctx.Err())
			return
		case <-client.done:
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case ev := <-client.Outbound:
			raw, err := json.Marshal(ev)
			if err != nil {
				hub.log.Warn("Failed to marshal activity event", "error", err)
				continue
			}
			_, _ = fmt.Fprintf(w, "event: message\ndata: %s\n\n", raw)
			flusher.Flush()
		}
	}
}

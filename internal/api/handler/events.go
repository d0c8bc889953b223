package handler

import (
	"net/http"

	"github.com/spiderxog/hub/internal/api/middleware"
	"github.com/spiderxog/hub/internal/api/sse"
)

// EventsHandler streams collection-changed events over SSE
type EventsHandler struct {
	hub *sse.Hub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *sse.Hub) *EventsHandler {
	return &EventsHandler{
		hub: hub,
	}
}

// Stream handles GET /api/v1/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	sse.ServeSSE(w, r, h.hub, sess.ID)
}

package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/eventbus"
	"github.com/heartmarshall/coursepilot-backend/pkg/ctxutil"
)

type subscriber interface {
	Subscribe(userID uuid.UUID) (<-chan eventbus.Event, func())
}

// EventsHandler streams a user's notifications.
type EventsHandler struct {
	bus       subscriber
	heartbeat time.Duration
	log       *slog.Logger
}

// NewEventsHandler creates an EventsHandler that writes a keep-alive
// comment every heartbeat.
func NewEventsHandler(bus subscriber, heartbeat time.Duration, logger *slog.Logger) *EventsHandler {
	if heartbeat <= 0 {
		heartbeat = 25 * time.Second
	}
	return &EventsHandler{bus: bus, heartbeat: heartbeat, log: logger.With("handler", "events")}
}

// Stream handles GET /api/events.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	log := h.log.With(slog.String("user_id", userID.String()))

	events, cancel := h.bus.Subscribe(userID)
	defer cancel()

	sse := newSSEWriter(w)
	if err := sse.comment("connected"); err != nil {
		log.WarnContext(r.Context(), "event stream", slog.String("error", err.Error()))
		return
	}
	log.InfoContext(r.Context(), "event stream opened")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.InfoContext(r.Context(), "event stream closed")
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := sse.send(ev); err != nil {
				log.InfoContext(r.Context(), "event stream write", slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			if err := sse.comment("ping"); err != nil {
				return
			}
		}
	}
}

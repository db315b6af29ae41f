package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/conectVagas/ConectaVagas/internal/broadcast"
	"github.com/conectVagas/ConectaVagas/internal/model"
)

const defaultKeepAlive = 25 * time.Second

// StreamHandler serves the live job-update feed over Server-Sent
// Events. Each connection gets its own subscription; dropped events
// are recovered by the client refetching the listing on reconnect.
type StreamHandler struct {
	broadcaster *broadcast.Broadcaster
	keepAlive   time.Duration
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(broadcaster *broadcast.Broadcaster) *StreamHandler {
	return &StreamHandler{
		broadcaster: broadcaster,
		keepAlive:   defaultKeepAlive,
	}
}

// Stream handles GET /api/stream
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, model.NewInternalError("streaming não suportado"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// Reconnect hint for EventSource clients
	_, _ = fmt.Fprint(w, "retry: 3000\n\n")
	flusher.Flush()

	events := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(events)

	// Periodic comment keeps proxies from closing idle connections
	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/andrewmaci/KebabManager/internal/runtime"
	logpkg "github.com/andrewmaci/KebabManager/pkg/log"
)

// StreamController serves the live order event stream over Server-Sent
// Events.
type StreamController struct {
	rt     *runtime.Runtime
	logger *logpkg.Logger
}

// NewStreamController creates the stream controller.
func NewStreamController(rt *runtime.Runtime) *StreamController {
	return &StreamController{rt: rt, logger: rt.Logger().With(logpkg.Component("stream"))}
}

// RegisterRoutes registers the stream endpoint.
func (c *StreamController) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/orders/stream", c.handleStream).Methods(http.MethodGet)
}

// handleStream runs one subscriber session: register a queue, forward each
// event as an SSE message, and unregister when the client disconnects or
// the hub shuts down — whichever happens first.
func (c *StreamController) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := c.rt.Hub().Subscribe()
	defer c.rt.Hub().Unsubscribe(sub)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, open := <-sub.Events():
			if !open {
				return
			}
			payload, err := json.Marshal(ev.Payload)
			if err != nil {
				c.logger.Error("encode event", logpkg.Str("kind", string(ev.Kind)), logpkg.Err(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Kind, payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

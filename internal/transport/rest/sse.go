package rest

import (
	"fmt"
	"net/http"

	"github.com/heartmarshall/coursepilot-backend/internal/stream"
)

// sseWriter writes server-sent events. Headers are sent with the first
// event so a handler can still fall back to a plain JSON error before it.
type sseWriter struct {
	w       http.ResponseWriter
	rc      *http.ResponseController
	enc     *stream.Encoder
	started bool
}

func newSSEWriter(w http.ResponseWriter) *sseWriter {
	return &sseWriter{w: w, rc: http.NewResponseController(w), enc: stream.NewEncoder(w)}
}

func (s *sseWriter) start() {
	if s.started {
		return
	}
	s.started = true
	h := s.w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	s.w.WriteHeader(http.StatusOK)
}

// send writes v as one data record and flushes it.
func (s *sseWriter) send(v any) error {
	s.start()
	if err := s.enc.Encode(v); err != nil {
		return err
	}
	return s.flush()
}

// comment writes an SSE comment line, used for keep-alives.
func (s *sseWriter) comment(text string) error {
	s.start()
	if _, err := fmt.Fprintf(s.w, ": %s\n\n", text); err != nil {
		return err
	}
	return s.flush()
}

func (s *sseWriter) flush() error {
	if err := s.rc.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

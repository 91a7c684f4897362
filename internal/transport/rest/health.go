package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and health endpoints.
type HealthHandler struct {
	checks  map[string]Pinger
	version string
	timeout time.Duration
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler over the named dependencies.
func NewHealthHandler(version string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks, version: version, timeout: 3 * time.Second, now: time.Now}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live handles GET /live. It always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready handles GET /ready: 200 when every dependency answers, else 503.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, healthy := h.probe(r.Context())
	status, code := "ok", http.StatusOK
	if !healthy {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: h.now()})
}

// Health handles GET /health with per-dependency latency and the build
// version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, healthy := h.probe(r.Context())
	status, code := "ok", http.StatusOK
	if !healthy {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	components := make(map[string]CompStatus, len(names))
	healthy := true
	for _, name := range names {
		start := time.Now()
		if err := h.checks[name].Ping(ctx); err != nil {
			components[name] = CompStatus{Status: "down"}
			healthy = false
			continue
		}
		components[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return components, healthy
}

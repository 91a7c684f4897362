package rest

import (
	"net/http"

	"github.com/heartmarshall/coursepilot-backend/internal/transport/middleware"
)

// Handlers groups every REST handler.
type Handlers struct {
	Health  *HealthHandler
	Chat    *ChatHandler
	Events  *EventsHandler
	Courses *CourseHandler
}

// Routes registers the API on mux. protect wraps endpoints that need a
// user; limit additionally wraps chat turns, which each cost a model call.
func Routes(mux *http.ServeMux, h Handlers, protect, limit middleware.Middleware) {
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	private := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, protect(fn))
	}

	mux.Handle("POST /api/chat", middleware.Chain(protect, limit)(http.HandlerFunc(h.Chat.Reply)))
	private("POST /api/chat/new", h.Chat.NewChat)
	private("GET /api/events", h.Events.Stream)

	private("GET /api/subjects", h.Courses.ListSubjects)
	private("GET /api/courses/{slug}", h.Courses.GetRecord)
	private("POST /api/courses/{slug}/sync", h.Courses.Sync)
	private("POST /api/courses/{slug}/surge-sessions", h.Courses.RecordSurgeSession)
	private("PUT /api/courses/{slug}/language", h.Courses.SetLanguage)
	private("PUT /api/courses/{slug}/exam-date", h.Courses.SetExamDate)
}

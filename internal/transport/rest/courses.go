package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/internal/natdate"
	"github.com/heartmarshall/coursepilot-backend/internal/service/reconcile"
	"github.com/heartmarshall/coursepilot-backend/internal/slug"
)

type courseService interface {
	ListSubjects(ctx context.Context) ([]domain.Subject, error)
	GetRecord(ctx context.Context, slug string) (*domain.CourseRecord, error)
	SetLanguage(ctx context.Context, slug, raw string) (domain.Language, error)
	SetExamDate(ctx context.Context, slug string, date domain.ExamDate) error
	Sync(ctx context.Context, slug string, local reconcile.LocalRecord) (*domain.CourseRecord, error)
	RecordSurgeSession(ctx context.Context, slug string, extra map[string]json.RawMessage) (domain.SurgeLogEntry, error)
}

// CourseHandler serves subjects and course records.
type CourseHandler struct {
	svc courseService
	log *slog.Logger
	now func() time.Time
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(svc courseService, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, log: logger.With("handler", "courses"), now: time.Now}
}

type subjectResponse struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Language  string `json:"language,omitempty"`
	Preparing bool   `json:"preparing,omitempty"`
}

type languageRequest struct {
	Language string `json:"language"`
}

type examDateRequest struct {
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

// ListSubjects handles GET /api/subjects.
func (h *CourseHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.svc.ListSubjects(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]subjectResponse, len(subjects))
	for i, s := range subjects {
		out[i] = subjectResponse{Slug: s.Slug, Name: s.Name, Language: string(s.Language), Preparing: s.Preparing}
	}
	writeJSON(w, http.StatusOK, out)
}

// GetRecord handles GET /api/courses/{slug}.
func (h *CourseHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	s, ok := h.slug(w, r)
	if !ok {
		return
	}
	rec, err := h.svc.GetRecord(r.Context(), s)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Sync handles POST /api/courses/{slug}/sync. The body is the client's
// cached record; the response is the merged record now stored.
func (h *CourseHandler) Sync(w http.ResponseWriter, r *http.Request) {
	s, ok := h.slug(w, r)
	if !ok {
		return
	}
	var local reconcile.LocalRecord
	if err := decodeJSON(w, r, &local); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if local.Slug == "" {
		local.Slug = s
	}

	merged, err := h.svc.Sync(r.Context(), s, local)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, merged)
}

// RecordSurgeSession handles POST /api/courses/{slug}/surge-sessions. The
// optional JSON object body is stored with the entry.
func (h *CourseHandler) RecordSurgeSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.slug(w, r)
	if !ok {
		return
	}
	var extra map[string]json.RawMessage
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &extra); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	entry, err := h.svc.RecordSurgeSession(r.Context(), s, extra)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// SetLanguage handles PUT /api/courses/{slug}/language.
func (h *CourseHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	s, ok := h.slug(w, r)
	if !ok {
		return
	}
	var req languageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lang, err := h.svc.SetLanguage(r.Context(), s, req.Language)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, languageRequest{Language: string(lang)})
}

// SetExamDate handles PUT /api/courses/{slug}/exam-date. The date may be
// ISO or a natural expression such as "next friday".
func (h *CourseHandler) SetExamDate(w http.ResponseWriter, r *http.Request) {
	s, ok := h.slug(w, r)
	if !ok {
		return
	}
	var req examDateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	date, err := natdate.Format(req.Date, h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, "unrecognized date")
		return
	}
	exam := domain.ExamDate{Date: date, Name: strings.TrimSpace(req.Name)}
	if err := h.svc.SetExamDate(r.Context(), s, exam); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, examDateRequest{Date: exam.Date, Name: exam.Name})
}

func (h *CourseHandler) slug(w http.ResponseWriter, r *http.Request) (string, bool) {
	s := slug.Normalize(r.PathValue("slug"))
	if s == "" {
		writeError(w, http.StatusBadRequest, "invalid slug")
		return "", false
	}
	return s, true
}

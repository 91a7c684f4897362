package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/internal/service/chat"
)

type chatService interface {
	Reply(ctx context.Context, req chat.Request, emit func(chat.Snapshot) error) (*chat.Result, error)
	NewChat(ctx context.Context) error
}

// ChatHandler streams assistant replies.
type ChatHandler struct {
	svc       chatService
	maxUpload int64
	log       *slog.Logger
}

// NewChatHandler creates a ChatHandler. maxUpload bounds a multipart turn.
func NewChatHandler(svc chatService, maxUpload int64, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, maxUpload: maxUpload, log: logger.With("handler", "chat")}
}

type chatRequest struct {
	Messages []domain.ChatMessage `json:"messages"`
}

// Event types written on the reply stream.
const (
	chatEventSnapshot = "snapshot"
	chatEventError    = "error"
)

type chatEvent struct {
	Type string `json:"type"`
	*chat.Snapshot
	Error string `json:"error,omitempty"`
}

// Reply handles POST /api/chat. The body is either JSON or multipart with
// a JSON "payload" field and "files" parts. The response is an event
// stream of snapshots; the last one has done set.
func (h *ChatHandler) Reply(w http.ResponseWriter, r *http.Request) {
	req, err := h.readRequest(w, r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sse := newSSEWriter(w)
	_, err = h.svc.Reply(r.Context(), req, func(s chat.Snapshot) error {
		return sse.send(chatEvent{Type: chatEventSnapshot, Snapshot: &s})
	})
	if err == nil {
		return
	}
	if !sse.started {
		handleError(h.log, w, r, err)
		return
	}
	if r.Context().Err() == nil {
		_ = sse.send(chatEvent{Type: chatEventError, Error: "reply interrupted"})
	}
}

// NewChat handles POST /api/chat/new.
func (h *ChatHandler) NewChat(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.NewChat(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) readRequest(w http.ResponseWriter, r *http.Request) (chat.Request, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var body chatRequest
		if err := decodeJSON(w, r, &body); err != nil {
			return chat.Request{}, err
		}
		return chat.Request{Messages: body.Messages}, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		return chat.Request{}, domain.NewValidationError("files", "upload too large or malformed")
	}

	var body chatRequest
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &body); err != nil {
		return chat.Request{}, domain.NewValidationError("payload", "invalid JSON")
	}

	req := chat.Request{Messages: body.Messages}
	verr := &domain.ValidationError{}
	for i, fh := range r.MultipartForm.File["files"] {
		if fh.Filename == "" || fh.Size == 0 {
			verr.Add(fmt.Sprintf("files[%d]", i), "empty or unnamed file")
			continue
		}
		up, err := readUpload(fh)
		if err != nil {
			return chat.Request{}, err
		}
		req.Files = append(req.Files, up)
	}
	if err := verr.OrNil(); err != nil {
		return chat.Request{}, err
	}
	return req, nil
}

func readUpload(fh *multipart.FileHeader) (domain.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return domain.Upload{}, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.Upload{}, fmt.Errorf("read upload %q: %w", fh.Filename, err)
	}
	return domain.Upload{
		Meta: domain.FileMeta{
			ID:       uuid.New(),
			Name:     fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Size:     int64(len(data)),
		},
		Data: data,
	}, nil
}

// Package chat runs one assistant reply: it reads the model's frame stream,
// re-parses the accumulated text after every append and dispatches the
// reply's actions once the stream is complete.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/directive"
	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/internal/service/dispatch"
	"github.com/heartmarshall/coursepilot-backend/internal/stream"
	"github.com/heartmarshall/coursepilot-backend/pkg/ctxutil"
)

type model interface {
	StreamChat(ctx context.Context, req domain.ChatRequest) (io.ReadCloser, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, batch dispatch.Batch) ([]dispatch.Outcome, error)
}

type subjectLister interface {
	SubjectRefs(ctx context.Context) ([]domain.SubjectRef, error)
}

type flowResetter interface {
	Reset(userID uuid.UUID)
}

type playback interface {
	Cancel(userID uuid.UUID)
}

// Request is one user turn.
type Request struct {
	// Messages is the conversation so far; the last one is the user's.
	Messages []domain.ChatMessage
	Files    []domain.Upload
}

func (r Request) utterance() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == domain.RoleUser {
			return r.Messages[i].Content
		}
	}
	return ""
}

// Snapshot is the client view of the reply at one point of the stream.
type Snapshot struct {
	Display  string                   `json:"display"`
	Elements []domain.UIElement       `json:"elements"`
	Actions  []domain.CanonicalAction `json:"actions"`
	ChatName string                   `json:"chatName,omitempty"`
	Done     bool                     `json:"done"`
}

// Result is the outcome of a finished reply.
type Result struct {
	Snapshot
	Text     string
	Outcomes []dispatch.Outcome
}

// Service runs chat replies.
type Service struct {
	model    model
	dispatch dispatcher
	subjects subjectLister
	flows    flowResetter
	tutorial playback
	log      *slog.Logger
}

// NewService creates a new chat service.
func NewService(log *slog.Logger, m model, d dispatcher, subjects subjectLister, flows flowResetter, tutorial playback) *Service {
	return &Service{
		model:    m,
		dispatch: d,
		subjects: subjects,
		flows:    flows,
		tutorial: tutorial,
		log:      log.With("service", "chat"),
	}
}

// Reply streams one assistant reply. emit receives a snapshot after every
// frame and a final snapshot with Done set. Actions are dispatched only
// after the model signals done. If the stream ends any other way the
// accumulated actions are still dispatched and the error wraps
// domain.ErrTransport.
func (s *Service) Reply(ctx context.Context, req Request, emit func(Snapshot) error) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if len(req.Messages) == 0 {
		return nil, domain.NewValidationError("messages", "required")
	}
	log := s.log.With(slog.String("user_id", userID.String()))

	subjects, err := s.subjects.SubjectRefs(ctx)
	if err != nil {
		log.WarnContext(ctx, "subject list unavailable", slog.String("error", err.Error()))
	}

	attachments := make([]string, 0, len(req.Files))
	for _, f := range req.Files {
		attachments = append(attachments, f.Meta.Name)
	}

	var (
		text     strings.Builder
		chatName string
		endErr   error
	)

	rc, err := s.model.StreamChat(ctx, domain.ChatRequest{
		Messages:    req.Messages,
		Subjects:    subjects,
		Attachments: attachments,
	})
	if err != nil {
		endErr = fmt.Errorf("%w: open stream: %v", domain.ErrTransport, err)
	} else {
		endErr = s.consume(ctx, rc, &text, &chatName, emit)
		rc.Close()
	}

	parsed := directive.Parse(text.String(), true)
	final := Snapshot{
		Display:  parsed.Display,
		Elements: parsed.Elements,
		Actions:  parsed.Actions,
		ChatName: chatName,
		Done:     true,
	}
	if emit != nil {
		if err := emit(final); err != nil {
			log.DebugContext(ctx, "final snapshot not delivered", slog.String("error", err.Error()))
		}
	}

	res := &Result{Snapshot: final, Text: text.String()}

	if len(parsed.Actions) > 0 {
		// The client may be gone already; the actions still run.
		outcomes, err := s.dispatch.Dispatch(context.WithoutCancel(ctx), dispatch.Batch{
			Actions:   parsed.Actions,
			Utterance: req.utterance(),
			Assistant: parsed.Display,
			Files:     req.Files,
		})
		if err != nil {
			log.ErrorContext(ctx, "dispatch", slog.String("error", err.Error()))
		}
		res.Outcomes = outcomes
	}

	if endErr != nil {
		log.WarnContext(ctx, "reply ended abnormally",
			slog.String("error", endErr.Error()),
			slog.Int("text_len", text.Len()),
			slog.Int("actions", len(parsed.Actions)),
		)
		return res, endErr
	}
	return res, nil
}

// consume reads frames until done. It returns nil only when the model
// signalled done.
func (s *Service) consume(ctx context.Context, r io.Reader, text *strings.Builder, chatName *string, emit func(Snapshot) error) error {
	dec := stream.NewDecoder(r)
	for {
		f, err := dec.Next(ctx)
		switch {
		case errors.Is(err, io.EOF):
			return fmt.Errorf("%w: stream ended before done", domain.ErrTransport)
		case err != nil:
			return fmt.Errorf("%w: %v", domain.ErrTransport, err)
		}

		switch f.Type {
		case stream.TypeDone:
			return nil
		case stream.TypeError:
			return fmt.Errorf("%w: model: %s", domain.ErrTransport, f.Content)
		case stream.TypeName:
			*chatName = strings.TrimSpace(f.Content)
		case stream.TypeText:
			text.WriteString(f.Content)
		default:
			continue
		}

		if emit == nil {
			continue
		}
		p := directive.Parse(text.String(), false)
		snap := Snapshot{Display: p.Display, Elements: p.Elements, Actions: p.Actions, ChatName: *chatName}
		if err := emit(snap); err != nil {
			return fmt.Errorf("%w: client: %v", domain.ErrTransport, err)
		}
	}
}

// NewChat discards the user's in-flight creation flow and tutorial
// playback.
func (s *Service) NewChat(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	s.flows.Reset(userID)
	s.tutorial.Cancel(userID)
	s.log.InfoContext(ctx, "chat reset", slog.String("user_id", userID.String()))
	return nil
}

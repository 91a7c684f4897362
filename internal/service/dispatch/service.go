// Package dispatch executes the canonical actions of a completed assistant
// message.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/internal/flow"
	"github.com/heartmarshall/coursepilot-backend/internal/service/coursecreate"
	"github.com/heartmarshall/coursepilot-backend/pkg/ctxutil"
)

type courseService interface {
	SubjectRefs(ctx context.Context) ([]domain.SubjectRef, error)
	SetLanguage(ctx context.Context, slug, raw string) (domain.Language, error)
	SetExamDate(ctx context.Context, slug string, date domain.ExamDate) error
}

type creator interface {
	Run(ctx context.Context, ticket flow.Ticket, req coursecreate.Request)
}

type notifier interface {
	Navigate(userID uuid.UUID, route string)
	ShowWidget(userID uuid.UUID, widget string)
	QuickLearn(userID uuid.UUID, query string)
}

type tutor interface {
	Continue(ctx context.Context, userID uuid.UUID) error
}

type flowGuard interface {
	TryBegin(userID uuid.UUID) (flow.Ticket, error)
}

// Batch is the frozen output of one completed stream plus the context the
// fallbacks extract from.
type Batch struct {
	Actions []domain.CanonicalAction
	// Utterance is the user message that prompted the reply.
	Utterance string
	// Assistant is the display text of the reply.
	Assistant string
	// Files are uploads attached to the user message.
	Files []domain.Upload
}

// Status is the outcome of one action.
type Status string

const (
	StatusDone    Status = "done"
	StatusStarted Status = "started"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome reports what happened to one action of a batch.
type Outcome struct {
	Action string
	Status Status
	Err    error
}

// Options tunes the dispatcher.
type Options struct {
	// PlaceholderSlugs are slugs the model emits when it does not know the
	// real one. They are treated as missing.
	PlaceholderSlugs []string
	// Heuristics override CourseHeuristics.
	Heuristics []Heuristic
}

// Dispatcher runs canonical actions. Each action is isolated: an error or
// panic in one never stops the rest of the batch.
type Dispatcher struct {
	courses      courseService
	creator      creator
	notify       notifier
	tutor        tutor
	flows        flowGuard
	placeholders map[string]bool
	heuristics   []Heuristic
	log          *slog.Logger
	now          func() time.Time

	// wg tracks background creation flows.
	wg sync.WaitGroup
}

// New creates a Dispatcher.
func New(
	log *slog.Logger,
	courses courseService,
	creator creator,
	notify notifier,
	tutor tutor,
	flows flowGuard,
	opts Options,
) *Dispatcher {
	placeholders := make(map[string]bool, len(opts.PlaceholderSlugs))
	for _, s := range opts.PlaceholderSlugs {
		placeholders[strings.ToLower(s)] = true
	}
	heuristics := opts.Heuristics
	if heuristics == nil {
		heuristics = CourseHeuristics
	}
	return &Dispatcher{
		courses:      courses,
		creator:      creator,
		notify:       notify,
		tutor:        tutor,
		flows:        flows,
		placeholders: placeholders,
		heuristics:   heuristics,
		log:          log.With("service", "dispatch"),
		now:          time.Now,
	}
}

type handler func(ctx context.Context, userID uuid.UUID, a domain.CanonicalAction, b *batchState) (Status, error)

func (d *Dispatcher) handlers() map[string]handler {
	return map[string]handler{
		domain.ActionNavigate:             d.navigate,
		domain.ActionNavigateCourse:       d.navigatePage(""),
		domain.ActionNavigatePractice:     d.navigatePage("practice"),
		domain.ActionNavigateSurge:        d.navigatePage("surge"),
		domain.ActionStartExamSnipe:       d.startExamSnipe,
		domain.ActionOpenCourseModal:      d.openCourseModal,
		domain.ActionGenerateQuickLearn:   d.generateQuickLearn,
		domain.ActionSetCourseLanguage:    d.setCourseLanguage,
		domain.ActionSetExamDate:          d.setExamDate,
		domain.ActionCreateCourse:         d.createCourse(false),
		domain.ActionCreateCourseFromText: d.createCourse(true),
		domain.ActionTutorialContinue:     d.tutorialContinue,
	}
}

// batchState carries data shared by the actions of one batch. The subject
// list is loaded at most once.
type batchState struct {
	Batch

	subjects    []domain.SubjectRef
	subjectsErr error
	loaded      bool
}

func (b *batchState) refs(ctx context.Context, courses courseService) ([]domain.SubjectRef, error) {
	if !b.loaded {
		b.subjects, b.subjectsErr = courses.SubjectRefs(ctx)
		b.loaded = true
	}
	return b.subjects, b.subjectsErr
}

// Dispatch executes every action of the batch once, in order, and reports
// one Outcome per action. Unknown action names are skipped.
func (d *Dispatcher) Dispatch(ctx context.Context, batch Batch) ([]Outcome, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	handlers := d.handlers()
	state := &batchState{Batch: batch}
	seen := make(map[string]bool, len(batch.Actions))
	outcomes := make([]Outcome, 0, len(batch.Actions))

	for _, a := range batch.Actions {
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true

		h, ok := handlers[a.Name]
		if !ok {
			d.log.WarnContext(ctx, "unknown action", slog.String("action", a.Name))
			outcomes = append(outcomes, Outcome{Action: a.Name, Status: StatusSkipped})
			continue
		}

		status, err := d.run(ctx, userID, a, state, h)
		outcomes = append(outcomes, Outcome{Action: a.Name, Status: status, Err: err})
	}

	return outcomes, nil
}

// run executes h with panic recovery and classifies the result.
func (d *Dispatcher) run(ctx context.Context, userID uuid.UUID, a domain.CanonicalAction, b *batchState, h handler) (status Status, err error) {
	log := d.log.With(slog.String("action", a.Name), slog.String("user_id", userID.String()))

	defer func() {
		if r := recover(); r != nil {
			status, err = StatusFailed, fmt.Errorf("action %s panicked: %v", a.Name, r)
			log.ErrorContext(ctx, "action panicked", slog.Any("panic", r))
		}
	}()

	status, err = h(ctx, userID, a, b)
	switch {
	case err == nil:
		log.InfoContext(ctx, "action dispatched", slog.String("status", string(status)))
	case errors.Is(err, domain.ErrUnresolved), errors.Is(err, domain.ErrCreationInProgress):
		status = StatusSkipped
		log.InfoContext(ctx, "action skipped", slog.String("reason", err.Error()))
	default:
		status = StatusFailed
		log.ErrorContext(ctx, "action failed", slog.String("error", err.Error()))
	}
	return status, err
}

// Wait blocks until every background creation flow started by this
// dispatcher has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) isPlaceholder(s string) bool {
	return d.placeholders[strings.ToLower(strings.TrimSpace(s))]
}

func unresolved(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrUnresolved, fmt.Sprintf(format, args...))
}

// Package coursecreate runs the course-creation pipeline:
//
//  1. reservation: unique slug and a placeholder subject
//  2. materialization: initial record from text and uploads
//  3. summarization: model summary replaces the raw text
//  4. auto-rename: detected name for placeholder or text-only courses
//  5. enrichment: background exam detection and analysis
//
// Only reservation is fatal. Every later phase logs its failure and the
// pipeline continues with what it had.
package coursecreate

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/internal/flow"
)

// Pipeline phases, as reported to the flow state machine.
const (
	PhaseReservation = iota + 1
	PhaseMaterialization
	PhaseSummarization
	PhaseRename
	PhaseEnrichment
)

type subjectRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Subject, error)
	Create(ctx context.Context, s domain.Subject) (*domain.Subject, error)
	Rename(ctx context.Context, userID uuid.UUID, slug, name string) error
	SetPreparing(ctx context.Context, userID uuid.UUID, slug string, preparing bool) error
}

type recordRepo interface {
	GetForUpdate(ctx context.Context, userID uuid.UUID, slug string) (*domain.CourseRecord, error)
	Put(ctx context.Context, userID uuid.UUID, rec domain.CourseRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type extractor interface {
	ExtractText(ctx context.Context, up domain.Upload) (string, error)
}

type summarizer interface {
	Summarize(ctx context.Context, material string) (string, error)
	DetectName(ctx context.Context, material string) (string, error)
}

type examAnalyzer interface {
	ClassifyExams(ctx context.Context, docs []domain.Document) ([]uuid.UUID, error)
	AnalyzeExams(ctx context.Context, course string, exams []domain.Document) (string, error)
}

type notifier interface {
	CoursePreparing(userID uuid.UUID, slug, name string)
	CourseCreated(userID uuid.UUID, slug, name string, failed bool)
}

// Options tunes the pipeline.
type Options struct {
	// PlaceholderNames are names that always trigger auto-rename.
	PlaceholderNames []string
	// MinNameLen is the shortest name kept without auto-rename.
	MinNameLen int
	// UploadConcurrency bounds parallel text extraction.
	UploadConcurrency int
}

// Service runs creation flows.
type Service struct {
	subjects  subjectRepo
	records   recordRepo
	tx        txManager
	extractor extractor
	summary   summarizer
	exams     examAnalyzer
	notify    notifier
	opts      Options
	log       *slog.Logger

	// bg tracks background enrichment.
	bg sync.WaitGroup
}

// NewService creates a new course-creation service.
func NewService(
	log *slog.Logger,
	subjects subjectRepo,
	records recordRepo,
	tx txManager,
	extractor extractor,
	summary summarizer,
	exams examAnalyzer,
	notify notifier,
	opts Options,
) *Service {
	if opts.MinNameLen <= 0 {
		opts.MinNameLen = 3
	}
	if opts.UploadConcurrency <= 0 {
		opts.UploadConcurrency = 4
	}
	return &Service{
		subjects:  subjects,
		records:   records,
		tx:        tx,
		extractor: extractor,
		summary:   summary,
		exams:     exams,
		notify:    notify,
		opts:      opts,
		log:       log.With("service", "coursecreate"),
	}
}

// creation is the state one flow carries between phases.
type creation struct {
	userID  uuid.UUID
	req     Request
	subject domain.Subject
	docs    []domain.Document
	summary string
}

func (c *creation) rawText() string {
	return strings.TrimSpace(c.req.Text)
}

// Run executes the pipeline for the ticket's user. It returns once the
// course is announced; enrichment continues in the background.
func (s *Service) Run(ctx context.Context, ticket flow.Ticket, req Request) {
	userID := ticket.UserID()
	log := s.log.With(slog.String("user_id", userID.String()))
	c := &creation{userID: userID, req: req}

	advance := func(phase int) {
		if !ticket.Advance(phase) {
			log.InfoContext(ctx, "flow reset, pipeline continues detached", slog.Int("phase", phase))
		}
	}

	advance(PhaseReservation)
	subj, err := s.reserve(ctx, userID, req.Name)
	if err != nil {
		log.ErrorContext(ctx, "reservation failed", slog.String("error", err.Error()))
		s.notify.CourseCreated(userID, "", strings.TrimSpace(req.Name), true)
		ticket.End()
		return
	}
	c.subject = *subj
	log = log.With(slog.String("slug", subj.Slug))
	s.notify.CoursePreparing(userID, subj.Slug, subj.Name)

	advance(PhaseMaterialization)
	s.materialize(ctx, log, c)

	advance(PhaseSummarization)
	s.summarize(ctx, log, c)

	advance(PhaseRename)
	s.autoRename(ctx, log, c)

	if err := s.subjects.SetPreparing(ctx, userID, c.subject.Slug, false); err != nil {
		log.ErrorContext(ctx, "clear preparing", slog.String("error", err.Error()))
	}
	s.notify.CourseCreated(userID, c.subject.Slug, c.subject.Name, false)
	log.InfoContext(ctx, "course created", slog.String("name", c.subject.Name))

	ticket.End()

	if len(c.docs) > 0 {
		s.bg.Add(1)
		go func() {
			defer s.bg.Done()
			s.enrich(context.WithoutCancel(ctx), log.With(slog.Int("phase", PhaseEnrichment)), c)
		}()
	}
}

// Wait blocks until background enrichment has finished.
func (s *Service) Wait() {
	s.bg.Wait()
}

// needsRename reports whether the name should be replaced by a detected one.
func (s *Service) needsRename(name string, textOnly bool) bool {
	if textOnly {
		return true
	}
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < s.opts.MinNameLen {
		return true
	}
	for _, p := range s.opts.PlaceholderNames {
		if strings.EqualFold(name, p) {
			return true
		}
	}
	return false
}

// Package course manages a user's subjects and their session records.
package course

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

type subjectRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Subject, error)
	Get(ctx context.Context, userID uuid.UUID, slug string) (*domain.Subject, error)
	SetLanguage(ctx context.Context, userID uuid.UUID, slug string, lang domain.Language) error
}

type recordRepo interface {
	Get(ctx context.Context, userID uuid.UUID, slug string) (*domain.CourseRecord, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID, slug string) (*domain.CourseRecord, error)
	Put(ctx context.Context, userID uuid.UUID, rec domain.CourseRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	CourseLanguageChanged(userID uuid.UUID, slug, language string)
	ExamDateSet(userID uuid.UUID, slug, date string)
}

// Service provides subject and course record operations.
type Service struct {
	subjects  subjectRepo
	records   recordRepo
	tx        txManager
	notify    notifier
	languages []domain.Language
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new course service. languages is the closed option
// set for course languages.
func NewService(
	log *slog.Logger,
	subjects subjectRepo,
	records recordRepo,
	tx txManager,
	notify notifier,
	languages []domain.Language,
) *Service {
	if len(languages) == 0 {
		languages = domain.DefaultLanguages
	}
	return &Service{
		subjects:  subjects,
		records:   records,
		tx:        tx,
		notify:    notify,
		languages: languages,
		log:       log.With("service", "course"),
		now:       time.Now,
	}
}

package course

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/pkg/ctxutil"
)

// ListSubjects returns the caller's subjects.
func (s *Service) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	subjects, err := s.subjects.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// SubjectRefs returns the caller's subjects as name/slug pairs.
func (s *Service) SubjectRefs(ctx context.Context) ([]domain.SubjectRef, error) {
	subjects, err := s.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Refs(subjects), nil
}

// GetRecord returns the stored record for slug. A subject without a stored
// record yields an empty record carrying its slug and name.
func (s *Service) GetRecord(ctx context.Context, slug string) (*domain.CourseRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.records.Get(ctx, userID, slug)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get record: %w", err)
	}

	subj, err := s.subjects.Get(ctx, userID, slug)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	return &domain.CourseRecord{Slug: subj.Slug, Subject: subj.Name, Language: subj.Language}, nil
}

// SetLanguage normalizes raw against the language option set and stores it
// on the subject and its record. Values outside the set fail validation.
func (s *Service) SetLanguage(ctx context.Context, slug, raw string) (domain.Language, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	lang, ok := domain.NormalizeLanguage(raw, s.languages)
	if !ok {
		return "", domain.NewValidationError("language", fmt.Sprintf("unsupported language %q", raw))
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.subjects.SetLanguage(ctx, userID, slug, lang); err != nil {
			return fmt.Errorf("set subject language: %w", err)
		}
		return s.updateRecord(ctx, slug, func(rec *domain.CourseRecord) {
			rec.Language = lang
		})
	})
	if err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "course language set",
		slog.String("user_id", userID.String()),
		slog.String("slug", slug),
		slog.String("language", lang.String()),
	)
	s.notify.CourseLanguageChanged(userID, slug, lang.String())

	return lang, nil
}

// SetExamDate replaces the course's exam-date list with the single date.
func (s *Service) SetExamDate(ctx context.Context, slug string, date domain.ExamDate) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.updateRecord(ctx, slug, func(rec *domain.CourseRecord) {
			rec.ExamDates = []domain.ExamDate{date}
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "exam date set",
		slog.String("user_id", userID.String()),
		slog.String("slug", slug),
		slog.String("date", date.Date),
	)
	s.notify.ExamDateSet(userID, slug, date.Date)

	return nil
}

// updateRecord loads the record under lock (or seeds one from the subject),
// applies fn and stores the result. Must run inside a transaction.
func (s *Service) updateRecord(ctx context.Context, slug string, fn func(rec *domain.CourseRecord)) error {
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	rec, err := s.records.GetForUpdate(ctx, userID, slug)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		subj, err := s.subjects.Get(ctx, userID, slug)
		if err != nil {
			return fmt.Errorf("get subject: %w", err)
		}
		rec = &domain.CourseRecord{Slug: subj.Slug, Subject: subj.Name, Language: subj.Language}
	case err != nil:
		return fmt.Errorf("get record: %w", err)
	}

	fn(rec)

	if err := s.records.Put(ctx, userID, *rec); err != nil {
		return fmt.Errorf("put record: %w", err)
	}
	return nil
}

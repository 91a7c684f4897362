package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/internal/natdate"
)

func (d *Dispatcher) setCourseLanguage(ctx context.Context, _ uuid.UUID, a domain.CanonicalAction, b *batchState) (Status, error) {
	raw := a.Param("language")
	if raw == "" {
		raw = a.Param("lang")
	}
	if strings.TrimSpace(raw) == "" {
		return "", unresolved("no language given")
	}

	s, err := d.resolveCourse(ctx, a, b)
	if err != nil {
		return "", err
	}

	if _, err := d.courses.SetLanguage(ctx, s, raw); err != nil {
		return "", fmt.Errorf("set language of %s: %w", s, err)
	}
	return StatusDone, nil
}

// setExamDate replaces the course's exam dates with the parsed date.
func (d *Dispatcher) setExamDate(ctx context.Context, _ uuid.UUID, a domain.CanonicalAction, b *batchState) (Status, error) {
	s, err := d.resolveCourse(ctx, a, b)
	if err != nil {
		return "", err
	}

	t, err := natdate.Parse(a.Param("date"), d.now())
	if err != nil {
		return "", unresolved("%v", err)
	}

	date := domain.ExamDate{Date: t.Format(domain.DateLayout), Name: a.Param("exam")}
	if err := d.courses.SetExamDate(ctx, s, date); err != nil {
		return "", fmt.Errorf("set exam date of %s: %w", s, err)
	}
	return StatusDone, nil
}

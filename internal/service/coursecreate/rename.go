package coursecreate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// renameSource picks the material for name detection: documents first,
// then the summary, then the raw text.
func renameSource(c *creation) string {
	if docs := combine("", c.docs); docs != "" {
		return docs
	}
	if c.summary != "" {
		return c.summary
	}
	return c.rawText()
}

// autoRename replaces placeholder, too-short and text-only names with one
// detected by the model. The slug is never changed.
func (s *Service) autoRename(ctx context.Context, log *slog.Logger, c *creation) {
	if !s.needsRename(c.subject.Name, c.req.TextOnly) {
		return
	}
	source := renameSource(c)
	if source == "" {
		return
	}

	name, err := s.summary.DetectName(ctx, source)
	if err != nil {
		log.WarnContext(ctx, "detect name", slog.String("error", err.Error()))
		return
	}
	name = strings.TrimSpace(name)
	if name == "" || name == c.subject.Name {
		return
	}

	if err := s.subjects.Rename(ctx, c.userID, c.subject.Slug, name); err != nil {
		log.ErrorContext(ctx, "rename subject", slog.String("error", err.Error()))
		return
	}
	log.InfoContext(ctx, "course renamed", slog.String("from", c.subject.Name), slog.String("to", name))
	c.subject.Name = name

	err = s.updateRecord(ctx, c, func(rec *domain.CourseRecord) {
		rec.Subject = name
	})
	if err != nil {
		log.ErrorContext(ctx, "store renamed record", slog.String("error", err.Error()))
	}
}

package dispatch

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/internal/slug"
)

// courseParams are the parameters an action may name its course with, in
// the order they are tried.
var courseParams = []string{"slug", "course", "name", "subject"}

// resolveCourse finds the known subject an action refers to. Supplied
// values go through the slug resolver; placeholders count as missing. When
// nothing supplied resolves to a known subject the course heuristics run.
// Unknown slugs are never returned while the subject list is available.
func (d *Dispatcher) resolveCourse(ctx context.Context, a domain.CanonicalAction, b *batchState) (string, error) {
	subjects, err := b.refs(ctx, d.courses)
	if err != nil {
		d.log.WarnContext(ctx, "subject list unavailable", slog.String("error", err.Error()))
		subjects = nil
	}

	var unverified string
	for _, key := range courseParams {
		v := a.Param(key)
		if v == "" || d.isPlaceholder(v) {
			continue
		}
		res := slug.Resolve(v, subjects)
		if !res.OK() || d.isPlaceholder(res.Slug) {
			continue
		}
		if res.Known {
			return res.Slug, nil
		}
		if unverified == "" {
			unverified = res.Slug
		}
	}

	if s, tag, ok := guessCourse(d.heuristics, Clues{Assistant: b.Assistant, Utterance: b.Utterance}, subjects); ok {
		d.log.InfoContext(ctx, "course guessed",
			slog.String("action", a.Name),
			slog.String("slug", s),
			slog.String("heuristic", tag),
		)
		return s, nil
	}

	// Without a subject list nothing can be verified; trust the model.
	if err != nil && unverified != "" {
		return unverified, nil
	}

	return "", unresolved("no known course for %s", a.Name)
}

package course

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/internal/service/reconcile"
	"github.com/heartmarshall/coursepilot-backend/pkg/ctxutil"
)

// Sync merges the client's cached record into the stored one, persists
// the merge and returns it.
func (s *Service) Sync(ctx context.Context, slug string, local reconcile.LocalRecord) (*domain.CourseRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if local.Slug != "" && local.Slug != slug {
		return nil, domain.NewValidationError("slug", "does not match the course being synced")
	}

	var merged domain.CourseRecord
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.updateRecord(ctx, slug, func(rec *domain.CourseRecord) {
			merged = reconcile.Merge(*rec, local)
			merged.Slug = slug
			*rec = merged
		})
	})
	if err != nil {
		return nil, fmt.Errorf("sync %s: %w", slug, err)
	}

	s.log.InfoContext(ctx, "course synced",
		slog.String("user_id", userID.String()),
		slog.String("slug", slug),
		slog.Int("surge_entries", len(merged.SurgeLog)),
		slog.Bool("cleared", local.Cleared()),
	)

	return &merged, nil
}

// RecordSurgeSession appends a completed practice session to the course's
// surge log under a fresh ULID session id.
func (s *Service) RecordSurgeSession(ctx context.Context, slug string, extra map[string]json.RawMessage) (domain.SurgeLogEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.SurgeLogEntry{}, domain.ErrUnauthorized
	}

	now := s.now().UTC()
	entry := domain.SurgeLogEntry{
		SessionID: ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Timestamp: now.Truncate(time.Millisecond),
		Extra:     extra,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.updateRecord(ctx, slug, func(rec *domain.CourseRecord) {
			rec.SurgeLog = append(rec.SurgeLog, entry)
		})
	})
	if err != nil {
		return domain.SurgeLogEntry{}, fmt.Errorf("record surge session: %w", err)
	}

	s.log.InfoContext(ctx, "surge session recorded",
		slog.String("user_id", userID.String()),
		slog.String("slug", slug),
		slog.String("session_id", entry.SessionID),
	)

	return entry, nil
}

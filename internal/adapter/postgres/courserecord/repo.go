// Package courserecord stores per-course session records as JSONB, keyed by
// (user, slug). The record shape is owned by the client protocol, so the
// row holds it whole.
package courserecord

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// Repo provides course record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new course record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const getSQL = `
SELECT data FROM course_records
WHERE user_id = $1 AND slug = $2`

const getForUpdateSQL = getSQL + `
FOR UPDATE`

const putSQL = `
INSERT INTO course_records (user_id, slug, data, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (user_id, slug) DO UPDATE
SET data = EXCLUDED.data, updated_at = now()`

// Get returns the record for slug.
// Returns domain.ErrNotFound if none is stored.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, slug string) (*domain.CourseRecord, error) {
	return r.get(ctx, getSQL, userID, slug)
}

// GetForUpdate is Get with a row lock; use it inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, userID uuid.UUID, slug string) (*domain.CourseRecord, error) {
	return r.get(ctx, getForUpdateSQL, userID, slug)
}

// Put stores rec under (userID, rec.Slug), replacing any previous record.
// Returns domain.ErrNotFound if the subject does not exist.
func (r *Repo) Put(ctx context.Context, userID uuid.UUID, rec domain.CourseRecord) error {
	if rec.Slug == "" {
		return domain.NewValidationError("slug", "required")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("course_record %s: marshal: %w", rec.Slug, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, putSQL, userID, rec.Slug, data); err != nil {
		return postgres.MapError(err, "course_record", rec.Slug)
	}
	return nil
}

func (r *Repo) get(ctx context.Context, sql string, userID uuid.UUID, slug string) (*domain.CourseRecord, error) {
	var data []byte
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, userID, slug).Scan(&data); err != nil {
		return nil, postgres.MapError(err, "course_record", slug)
	}

	var rec domain.CourseRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("course_record %s: unmarshal: %w", slug, err)
	}
	if rec.Slug == "" {
		rec.Slug = slug
	}
	return &rec, nil
}

// Package subject implements the subject repository using PostgreSQL.
// Queries are built with squirrel and scanned with pgxscan.
package subject

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

const table = "subjects"

var columns = []string{"user_id", "slug", "name", "language", "preparing", "created_at", "updated_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides subject persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new subject repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	UserID    uuid.UUID `db:"user_id"`
	Slug      string    `db:"slug"`
	Name      string    `db:"name"`
	Language  string    `db:"language"`
	Preparing bool      `db:"preparing"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Subject {
	return domain.Subject{
		UserID:    r.UserID,
		Slug:      r.Slug,
		Name:      r.Name,
		Language:  domain.Language(r.Language),
		Preparing: r.Preparing,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the user's subjects, oldest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Subject, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list subjects: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	out := make([]domain.Subject, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Get returns one subject by slug.
// Returns domain.ErrNotFound if the user has no such subject.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, slug string) (*domain.Subject, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get subject: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "subject", slug)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("subject %s: %w", slug, domain.ErrNotFound)
	}

	s := rows[0].toDomain()
	return &s, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts s and returns the stored row.
// Returns domain.ErrAlreadyExists if the slug is taken.
func (r *Repo) Create(ctx context.Context, s domain.Subject) (*domain.Subject, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(s.UserID, s.Slug, s.Name, string(s.Language), s.Preparing, now, now).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create subject: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "subject", s.Slug)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("subject %s: insert returned no row", s.Slug)
	}

	created := rows[0].toDomain()
	return &created, nil
}

// Rename changes the display name. The slug never changes.
func (r *Repo) Rename(ctx context.Context, userID uuid.UUID, slug, name string) error {
	return r.update(ctx, userID, slug, sq.Eq{"name": name})
}

// SetLanguage stores the course language.
func (r *Repo) SetLanguage(ctx context.Context, userID uuid.UUID, slug string, lang domain.Language) error {
	return r.update(ctx, userID, slug, sq.Eq{"language": string(lang)})
}

// SetPreparing toggles the placeholder flag.
func (r *Repo) SetPreparing(ctx context.Context, userID uuid.UUID, slug string, preparing bool) error {
	return r.update(ctx, userID, slug, sq.Eq{"preparing": preparing})
}

// Delete removes a subject; its course record cascades.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, slug string) error {
	query, args, err := psql.Delete(table).
		Where(sq.Eq{"user_id": userID, "slug": slug}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete subject: %w", err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "subject", slug)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("subject %s: %w", slug, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) update(ctx context.Context, userID uuid.UUID, slug string, set sq.Eq) error {
	query, args, err := psql.Update(table).
		SetMap(set).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "slug": slug}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update subject: %w", err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "subject", slug)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("subject %s: %w", slug, domain.ErrNotFound)
	}
	return nil
}

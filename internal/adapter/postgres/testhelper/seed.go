package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedSubject inserts a subject for a fresh user and returns it.
func SeedSubject(t *testing.T, pool *pgxpool.Pool) domain.Subject {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Subject{
		UserID:    uuid.New(),
		Slug:      "course-" + suffix,
		Name:      "Course " + suffix,
		Language:  "English",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO subjects (user_id, slug, name, language, preparing, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.UserID, s.Slug, s.Name, string(s.Language), s.Preparing, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubject: %v", err)
	}

	return s
}

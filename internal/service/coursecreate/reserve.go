package coursecreate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/internal/slug"
)

// DefaultName is used when a flow starts without a proposed name.
const DefaultName = "New Course"

const reserveAttempts = 3

// reserve creates the placeholder subject under a slug that is unique for
// the user. A concurrent insert of the same slug is retried against a
// fresh subject list.
func (s *Service) reserve(ctx context.Context, userID uuid.UUID, name string) (*domain.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	base := slug.Slugify(name)

	for attempt := 1; ; attempt++ {
		existing, err := s.subjects.List(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list subjects: %w", err)
		}

		subj, err := s.subjects.Create(ctx, domain.Subject{
			UserID:    userID,
			Slug:      slug.Unique(base, slug.Taken(domain.Refs(existing))),
			Name:      name,
			Preparing: true,
		})
		if err == nil {
			return subj, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) || attempt == reserveAttempts {
			return nil, fmt.Errorf("create subject: %w", err)
		}
	}
}

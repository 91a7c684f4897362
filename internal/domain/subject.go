package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subject is a course in the user's subject collection.
// Slug is unique per user and stable: renames change Name only.
type Subject struct {
	UserID    uuid.UUID
	Slug      string
	Name      string
	Language  Language
	Preparing bool // placeholder shown while the creation pipeline runs
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubjectRef is the minimal {name, slug} pair used for resolution.
type SubjectRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Refs converts subjects into name/slug pairs.
func Refs(subjects []Subject) []SubjectRef {
	refs := make([]SubjectRef, len(subjects))
	for i, s := range subjects {
		refs[i] = SubjectRef{Name: s.Name, Slug: s.Slug}
	}
	return refs
}

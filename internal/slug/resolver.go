package slug

import (
	"strings"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// Tier records which resolution step produced a slug.
type Tier int

const (
	TierNone Tier = iota
	TierSlug
	TierExactName
	TierSubstring
	TierUnverified
)

func (t Tier) String() string {
	switch t {
	case TierSlug:
		return "slug"
	case TierExactName:
		return "exact_name"
	case TierSubstring:
		return "substring"
	case TierUnverified:
		return "unverified"
	}
	return "none"
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	Slug string
	Tier Tier
	// Known is true when Slug belongs to a subject in the list.
	Known bool
}

// OK reports whether any slug was produced.
func (r Resolution) OK() bool { return r.Slug != "" }

// Resolve maps input, which may be a slug or a human course name, onto a
// best-effort slug:
//  1. input already in slug shape: normalized input;
//  2. a subject whose name equals input (case-insensitive);
//  3. a subject whose name contains input or is contained in it;
//  4. the normalized, unverified input.
//
// A nil subject list falls through to step 4. Resolve never fails; an empty
// Resolution means nothing usable was given.
func Resolve(input string, subjects []domain.SubjectRef) Resolution {
	input = strings.TrimSpace(input)
	if input == "" {
		return Resolution{}
	}

	if IsSlug(input) {
		s := Normalize(input)
		return Resolution{Slug: s, Tier: TierSlug, Known: known(s, subjects)}
	}

	if s, ok := ByExactName(input, subjects); ok {
		return Resolution{Slug: s, Tier: TierExactName, Known: true}
	}

	if s, ok := BySubstring(input, subjects); ok {
		return Resolution{Slug: s, Tier: TierSubstring, Known: true}
	}

	s := Normalize(input)
	if s == "" {
		return Resolution{}
	}
	return Resolution{Slug: s, Tier: TierUnverified, Known: known(s, subjects)}
}

// ByExactName finds the subject whose name equals name, ignoring case.
func ByExactName(name string, subjects []domain.SubjectRef) (string, bool) {
	q := FoldName(name)
	for _, s := range subjects {
		if FoldName(s.Name) == q {
			return s.Slug, true
		}
	}
	return "", false
}

// BySubstring finds the first subject whose name contains q or is
// contained in q, ignoring case.
func BySubstring(q string, subjects []domain.SubjectRef) (string, bool) {
	q = FoldName(q)
	if q == "" {
		return "", false
	}
	for _, s := range subjects {
		name := FoldName(s.Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, q) || strings.Contains(q, name) {
			return s.Slug, true
		}
	}
	return "", false
}

func known(slug string, subjects []domain.SubjectRef) bool {
	for _, s := range subjects {
		if s.Slug == slug {
			return true
		}
	}
	return false
}

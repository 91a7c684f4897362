// Package slug maps free-text course names onto stable URL-safe identifiers.
package slug

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

var (
	grammar    = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	disallowed = regexp.MustCompile(`[^a-z0-9_-]+`)
	separators = regexp.MustCompile(`[^a-z0-9]+`)
)

// IsSlug reports whether s already has slug shape (ignoring case).
func IsSlug(s string) bool {
	return grammar.MatchString(s)
}

// Normalize lowercases s and strips every character outside [a-z0-9-_].
func Normalize(s string) string {
	return disallowed.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

// Slugify turns a display name into a slug: lowercase, non-alphanumeric
// runs collapsed into a single "-", no leading or trailing separator.
func Slugify(name string) string {
	s := separators.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// Unique disambiguates base against taken by appending "-1", "-2", ...
// An empty base becomes "course".
func Unique(base string, taken map[string]bool) string {
	if base == "" {
		base = "course"
	}
	if !taken[base] {
		return base
	}
	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if !taken[candidate] {
			return candidate
		}
	}
}

// FoldName prepares a course name for comparison: trimmed, lowercased,
// with whitespace runs collapsed to one space.
func FoldName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Taken builds the lookup set Unique expects.
func Taken(subjects []domain.SubjectRef) map[string]bool {
	taken := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		taken[s.Slug] = true
	}
	return taken
}

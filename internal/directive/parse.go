package directive

import "github.com/heartmarshall/coursepilot-backend/internal/domain"

// Parsed is the view of one assistant message at a point in the stream.
type Parsed struct {
	Display  string
	Elements []domain.UIElement
	Actions  []domain.CanonicalAction
}

// Parse scans text once and derives display text, widgets and canonical
// actions from the same set of occurrences.
func Parse(text string, complete bool) Parsed {
	dirs, pending := scan(text, complete)
	return Parsed{
		Display:  strip(text, dirs, pending, complete),
		Elements: Elements(dirs),
		Actions:  Canonicalize(dirs),
	}
}

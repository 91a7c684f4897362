package directive

import (
	"unicode/utf8"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// Canonicalize folds the action occurrences in dirs into one
// CanonicalAction per name, ordered by first appearance.
//
// Streaming emits an action as soon as its name is visible and keeps
// extending parameter values, so the most complete occurrence wins rather
// than the literal last one. See supersedes for the total order.
func Canonicalize(dirs []Directive) []domain.CanonicalAction {
	var (
		order []string
		best  = make(map[string]Params)
	)
	for _, d := range dirs {
		if d.Kind() != KindAction {
			continue
		}
		cur, seen := best[d.Name()]
		if !seen {
			order = append(order, d.Name())
			best[d.Name()] = d.Params()
			continue
		}
		if supersedes(d.Params(), cur) {
			best[d.Name()] = d.Params()
		}
	}

	out := make([]domain.CanonicalAction, 0, len(order))
	for _, name := range order {
		out = append(out, domain.CanonicalAction{Name: name, Params: best[name].Map()})
	}
	return out
}

// supersedes reports whether a later occurrence cand replaces the
// incumbent inc:
//  1. cand loses if any long-form value is shorter than inc's (a missing
//     key counts as empty);
//  2. otherwise cand wins if any long-form value is strictly longer;
//  3. otherwise the larger parameter count wins;
//  4. on a full tie the later occurrence (cand) wins.
func supersedes(cand, inc Params) bool {
	cm, im := cand.Map(), inc.Map()

	longer := false
	for key := range longFormKeys {
		cl := utf8.RuneCountInString(cm[key])
		il := utf8.RuneCountInString(im[key])
		if cl < il {
			return false
		}
		if cl > il {
			longer = true
		}
	}
	if longer {
		return true
	}
	return len(cm) >= len(im)
}

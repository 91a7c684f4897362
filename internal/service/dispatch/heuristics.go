package dispatch

import (
	"regexp"
	"sort"
	"strings"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// Clues is the prose the course heuristics search.
type Clues struct {
	Assistant string
	Utterance string
}

// Heuristic guesses which known subjects a message refers to. It returns
// every candidate slug it found; a guess is only accepted when exactly one
// distinct subject comes back.
type Heuristic struct {
	Tag      string
	Priority int
	Extract  func(c Clues, subjects []domain.SubjectRef) []string
}

// CourseHeuristics are tried in Priority order when an action names no
// usable course. They rely on Latin-script word boundaries and
// capitalization, so they are a convenience and never authoritative.
var CourseHeuristics = []Heuristic{
	{Tag: "assistant_mention", Priority: 1, Extract: func(c Clues, subjects []domain.SubjectRef) []string {
		return mentioned(c.Assistant, subjects)
	}},
	{Tag: "utterance_mention", Priority: 2, Extract: func(c Clues, subjects []domain.SubjectRef) []string {
		return mentioned(c.Utterance, subjects)
	}},
	{Tag: "utterance_phrase", Priority: 3, Extract: func(c Clues, subjects []domain.SubjectRef) []string {
		return fromPhrases(coursePhraseRe, c.Utterance, subjects)
	}},
	{Tag: "assistant_capitalized", Priority: 4, Extract: func(c Clues, subjects []domain.SubjectRef) []string {
		return fromPhrases(capitalizedRe, c.Assistant, subjects)
	}},
}

var (
	coursePhraseRe = regexp.MustCompile(`(?i)\b(?:(?:my|the|for|in|of)\s+)+([\w&'\- ]+?)\s+(?:course|class|exam|final|midterm|subject)\b`)
	capitalizedRe  = regexp.MustCompile(`\b([A-Z][\w&'\-]*(?:\s+(?:[A-Z][\w&'\-]*|of|and|for|to|in|&|\d+))*)`)
)

// guessCourse runs hs in priority order and returns the first unambiguous
// guess with the tag of the heuristic that produced it.
func guessCourse(hs []Heuristic, c Clues, subjects []domain.SubjectRef) (slug, tag string, ok bool) {
	if len(subjects) == 0 {
		return "", "", false
	}
	ordered := make([]Heuristic, len(hs))
	copy(ordered, hs)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Priority < ordered[j].Priority })

	for _, h := range ordered {
		found := distinct(h.Extract(c, subjects))
		if len(found) == 1 {
			return found[0], h.Tag, true
		}
	}
	return "", "", false
}

// mentioned returns subjects whose full name occurs in text on word
// boundaries, ignoring case.
func mentioned(text string, subjects []domain.SubjectRef) []string {
	hay := wordsOnly(text)
	var out []string
	for _, s := range subjects {
		name := wordsOnly(s.Name)
		if name == "" {
			continue
		}
		if containsWords(hay, name) {
			out = append(out, s.Slug)
		}
	}
	return out
}

// fromPhrases matches every phrase captured by re against the subject
// names: exact name matches first, whole-word overlaps otherwise.
func fromPhrases(re *regexp.Regexp, text string, subjects []domain.SubjectRef) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, matching(m[1], subjects)...)
	}
	return out
}

func matching(phrase string, subjects []domain.SubjectRef) []string {
	q := wordsOnly(phrase)
	if len(q) < 4 {
		return nil
	}
	var exact, partial []string
	for _, s := range subjects {
		name := wordsOnly(s.Name)
		switch {
		case name == "":
		case name == q:
			exact = append(exact, s.Slug)
		case containsWords(name, q) || containsWords(q, name):
			partial = append(partial, s.Slug)
		}
	}
	if len(exact) > 0 {
		return exact
	}
	return partial
}

// containsWords reports whether sub occurs in s as a run of whole words.
func containsWords(s, sub string) bool {
	return strings.Contains(" "+s+" ", " "+sub+" ")
}

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

func wordsOnly(s string) string {
	return strings.TrimSpace(nonWord.ReplaceAllString(strings.ToLower(s), " "))
}

func distinct(slugs []string) []string {
	seen := make(map[string]bool, len(slugs))
	out := slugs[:0:0]
	for _, s := range slugs {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// quickLearnPatterns derive a lesson query from the user's message, most
// specific first.
var quickLearnPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:quick[\s-]?learn|teach me(?:\s+about)?|explain(?:\s+to me)?|learn about|tell me about|help me understand)\s+(.+?)[\s?.!]*$`),
	regexp.MustCompile(`(?i)\b(?:what|who)\s+(?:is|are|was|were)\s+(.+?)[\s?.!]*$`),
	regexp.MustCompile(`(?i)\bhow\s+(?:does|do|did|can)\s+(.+?)[\s?.!]*$`),
	regexp.MustCompile(`(?i)\babout\s+(.+?)[\s?.!]*$`),
}

const maxQueryLen = 120

// quickLearnQuery extracts the lesson topic from utterance. The whole
// message is the last resort when it is short enough to be a topic.
func quickLearnQuery(utterance string) string {
	u := strings.TrimSpace(utterance)
	for _, re := range quickLearnPatterns {
		if m := re.FindStringSubmatch(u); m != nil {
			if q := strings.TrimSpace(m[1]); q != "" {
				return q
			}
		}
	}
	u = strings.TrimRight(u, " ?.!")
	if u == "" || len(u) > maxQueryLen {
		return ""
	}
	return u
}

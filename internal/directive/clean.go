package directive

import (
	"strings"
)

// Clean returns text with every directive removed, ready for display.
// While the stream is incomplete, a trailing partial directive (or a
// trailing fragment of a keyword such as "ACTI") is hidden as well.
func Clean(text string, complete bool) string {
	dirs, pending := scan(text, complete)
	return strip(text, dirs, pending, complete)
}

func strip(text string, dirs []Directive, pending int, complete bool) string {
	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, d := range dirs {
		sp := d.Span()
		b.WriteString(text[last:sp.Start])
		b.WriteByte(' ')
		last = sp.End
	}
	tail := text[last:]
	if pending >= last {
		tail = text[last:pending]
	}
	if !complete {
		tail = trimKeywordFragment(tail)
	}
	b.WriteString(tail)

	return tidy(b.String())
}

// trimKeywordFragment drops a trailing token that is a proper prefix of a
// directive keyword, e.g. "Sure! ACTI".
func trimKeywordFragment(s string) string {
	i := strings.LastIndexAny(s, " \t\n\r")
	frag := s[i+1:]
	if len(frag) < 2 {
		return s
	}
	for _, k := range kinds {
		kw := k.keyword()
		if len(frag) < len(kw) && strings.HasPrefix(kw, frag) {
			return s[:i+1]
		}
	}
	return s
}

// tidy collapses horizontal whitespace runs, trims every line and keeps at
// most one blank line between paragraphs.
func tidy(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

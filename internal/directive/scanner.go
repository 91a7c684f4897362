package directive

import "strings"

// Scan returns every directive occurrence in text, in text order.
//
// When complete is false the stream is still arriving: a directive that
// runs into the end of text without a terminating boundary (newline,
// whitespace after a plain value, a following directive or a pipe) is
// omitted until more text or completion makes it parseable.
// Text that looks like a directive but does not match a grammar is prose.
func Scan(text string, complete bool) []Directive {
	dirs, _ := scan(text, complete)
	return dirs
}

type state int

const (
	stateProse state = iota
	stateName
	stateParamSep
	stateKey
	stateValue
	stateDone
)

type scanner struct {
	src      string
	complete bool
}

// scan also reports the start offset of an unterminated trailing
// directive, or -1.
func scan(text string, complete bool) ([]Directive, int) {
	s := scanner{src: text, complete: complete}
	var out []Directive
	pending := -1

	for i := 0; i < len(text); {
		kind, ok := s.keywordAt(i)
		if !ok {
			i++
			continue
		}
		d, end, status := s.directive(i, kind)
		switch status {
		case statusOK:
			out = append(out, d)
			i = end
		case statusPending:
			pending = i
			i = len(text)
		default:
			i += len(kind.keyword())
		}
	}
	return out, pending
}

type status int

const (
	statusMiss status = iota
	statusOK
	statusPending
)

// directive runs the token state machine for one occurrence starting at
// start. It returns the parsed directive and the offset just past it.
func (s *scanner) directive(start int, kind Kind) (Directive, int, status) {
	src := s.src
	pos := start + len(kind.keyword())

	var (
		t     = token{span: Span{Start: start}}
		key   string
		st    = stateName
		end   int
		value string
	)

	for st != stateDone {
		switch st {
		case stateName:
			j := wordEnd(src, pos)
			if j == pos {
				if j == len(src) && !s.complete {
					return nil, 0, statusPending
				}
				return nil, 0, statusMiss
			}
			t.name = src[pos:j]
			pos = j
			if pos == len(src) {
				if !s.complete {
					return nil, 0, statusPending
				}
				end, st = pos, stateDone
				continue
			}
			st = stateParamSep

		case stateParamSep:
			if pos < len(src) && src[pos] == '|' {
				st = stateKey
				continue
			}
			if pos == len(src) && !s.complete {
				return nil, 0, statusPending
			}
			end, st = pos, stateDone

		case stateKey:
			keyStart := pos + 1
			j := wordEnd(src, keyStart)
			if j == len(src) && !s.complete {
				// "|" or "|sl" at the very end: the next parameter is still arriving.
				return nil, 0, statusPending
			}
			if j == len(src) {
				// The stream ended inside the parameter: the fragment belongs
				// to the directive and is hidden with it.
				end, st = j, stateDone
				continue
			}
			if j == keyStart || src[j] != ':' {
				// A stray pipe closes the directive; the pipe itself stays prose.
				end, st = pos, stateDone
				continue
			}
			key = src[keyStart:j]
			pos = j + 1
			st = stateValue

		case stateValue:
			var (
				j          int
				terminated bool
				pending    bool
			)
			if IsLongForm(key) {
				j, terminated, pending = s.longValueEnd(pos)
				value = strings.TrimSpace(src[pos:j])
			} else {
				j = plainValueEnd(src, pos)
				terminated = j < len(src) || s.complete
				value = src[pos:j]
			}
			if pending || !terminated {
				return nil, 0, statusPending
			}
			t.params = append(t.params, Param{Key: key, Value: value})
			pos = j
			if pos < len(src) && src[pos] == '|' {
				st = stateParamSep
				continue
			}
			end, st = pos, stateDone
		}
	}

	t.span.End = end
	return newDirective(kind, t), end, statusOK
}

// longValueEnd finds the end of a free-text value. It stops at a newline,
// at the start of another directive, or at a pipe that opens the next
// key:value pair. Any other pipe is part of the value.
func (s *scanner) longValueEnd(pos int) (end int, terminated, pending bool) {
	src := s.src
	for j := pos; j < len(src); j++ {
		switch c := src[j]; {
		case c == '\n' || c == '\r':
			return j, true, false
		case c == '|':
			k := wordEnd(src, j+1)
			if k == len(src) {
				// "|" or "|ke" at the very end opens a parameter that is
				// still arriving, or was cut off if the stream is over.
				return j, s.complete, !s.complete
			}
			if k > j+1 && src[k] == ':' {
				return j, true, false
			}
		default:
			if j > pos {
				if _, ok := s.keywordAt(j); ok {
					return j, true, false
				}
			}
		}
	}
	return len(src), s.complete, false
}

// keywordAt reports whether a directive keyword starts at i on a word
// boundary.
func (s *scanner) keywordAt(i int) (Kind, bool) {
	if i > 0 && isWordByte(s.src[i-1]) {
		return 0, false
	}
	for _, k := range kinds {
		if strings.HasPrefix(s.src[i:], k.keyword()) {
			return k, true
		}
	}
	return 0, false
}

func plainValueEnd(src string, pos int) int {
	for j := pos; j < len(src); j++ {
		switch src[j] {
		case ' ', '\t', '\n', '\r', '|':
			return j
		}
	}
	return len(src)
}

func wordEnd(src string, pos int) int {
	j := pos
	for j < len(src) && isWordByte(src[j]) {
		j++
	}
	return j
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

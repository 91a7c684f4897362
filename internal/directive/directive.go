// Package directive extracts in-band commands from streamed assistant text.
//
// Three token grammars are recognised anywhere in the text:
//
//	ACTION:<name>(|<key>:<value>)*
//	BUTTON:<id>(|<key>:<value>)*
//	FILE_UPLOAD:<id>(|<key>:<value>)*
//
// Scanning is a pure function of the text seen so far, so it can be re-run
// on every chunk arrival without keeping a scan position between calls.
package directive

// Kind identifies which of the three grammars produced a directive.
type Kind int

const (
	KindAction Kind = iota + 1
	KindButton
	KindFileUpload
)

func (k Kind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindButton:
		return "button"
	case KindFileUpload:
		return "file_upload"
	}
	return "unknown"
}

func (k Kind) keyword() string {
	switch k {
	case KindAction:
		return "ACTION:"
	case KindButton:
		return "BUTTON:"
	case KindFileUpload:
		return "FILE_UPLOAD:"
	}
	return ""
}

var kinds = []Kind{KindAction, KindButton, KindFileUpload}

// longFormKeys may carry whitespace and survive an accidental mid-value pipe.
var longFormKeys = map[string]bool{
	"topic":       true,
	"name":        true,
	"syllabus":    true,
	"message":     true,
	"label":       true,
	"buttonLabel": true,
	"description": true,
	"query":       true,
	"date":        true,
}

// IsLongForm reports whether key holds free text.
func IsLongForm(key string) bool { return longFormKeys[key] }

// Span is the byte range [Start, End) of a directive in the scanned text.
type Span struct {
	Start int
	End   int
}

// Param is one key:value pair in occurrence order.
type Param struct {
	Key   string
	Value string
}

// Params is the ordered parameter list of one occurrence.
type Params []Param

// Get returns the last value for key.
func (p Params) Get(key string) (string, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Key == key {
			return p[i].Value, true
		}
	}
	return "", false
}

// Map flattens the list; later duplicates win.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, kv := range p {
		m[kv.Key] = kv.Value
	}
	return m
}

// Directive is one textual occurrence of a token grammar. The concrete
// types are Action, Button and FileUpload.
type Directive interface {
	Kind() Kind
	Name() string
	Params() Params
	Span() Span
	sealed()
}

type token struct {
	name   string
	params Params
	span   Span
}

func (t token) Name() string   { return t.name }
func (t token) Params() Params { return t.params }
func (t token) Span() Span     { return t.span }
func (t token) sealed()        {}

// Action is an ACTION: occurrence.
type Action struct{ token }

func (Action) Kind() Kind { return KindAction }

// Button is a BUTTON: occurrence; Name is the button id.
type Button struct{ token }

func (Button) Kind() Kind { return KindButton }

// FileUpload is a FILE_UPLOAD: occurrence; Name is the widget id.
type FileUpload struct{ token }

func (FileUpload) Kind() Kind { return KindFileUpload }

func newDirective(kind Kind, t token) Directive {
	switch kind {
	case KindButton:
		return Button{t}
	case KindFileUpload:
		return FileUpload{t}
	default:
		return Action{t}
	}
}

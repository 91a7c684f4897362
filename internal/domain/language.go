package domain

import "strings"

// Language is a course language from the closed option set.
type Language string

func (l Language) String() string { return string(l) }

// DefaultLanguages is the closed set of course languages.
var DefaultLanguages = []Language{
	"English", "Spanish", "French", "German", "Italian", "Portuguese",
	"Chinese", "Japanese", "Korean", "Russian", "Arabic", "Hindi",
	"Dutch", "Polish", "Turkish", "Swedish",
}

var languageCodes = map[string]Language{
	"en": "English", "es": "Spanish", "fr": "French", "de": "German",
	"it": "Italian", "pt": "Portuguese", "zh": "Chinese", "ja": "Japanese",
	"ko": "Korean", "ru": "Russian", "ar": "Arabic", "hi": "Hindi",
	"nl": "Dutch", "pl": "Polish", "tr": "Turkish", "sv": "Swedish",
}

// NormalizeLanguage maps a free-form language value onto one of options.
// Accepts the option name in any case, a two-letter ISO code, or a prefix
// of at least three letters ("span" -> Spanish). Returns false otherwise.
func NormalizeLanguage(raw string, options []Language) (Language, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return "", false
	}

	for _, opt := range options {
		if strings.ToLower(string(opt)) == v {
			return opt, true
		}
	}

	if lang, ok := languageCodes[v]; ok {
		for _, opt := range options {
			if opt == lang {
				return opt, true
			}
		}
	}

	if len(v) >= 3 {
		var match Language
		for _, opt := range options {
			if strings.HasPrefix(strings.ToLower(string(opt)), v) {
				if match != "" {
					return "", false
				}
				match = opt
			}
		}
		if match != "" {
			return match, true
		}
	}

	return "", false
}

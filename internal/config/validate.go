package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be > 0 (got %d)", c.Server.MaxUploadBytes)
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}
	if c.LLM.SummaryMaxTokens <= 0 {
		return fmt.Errorf("llm.summary_max_tokens must be > 0 (got %d)", c.LLM.SummaryMaxTokens)
	}

	if err := c.Assistant.validate(); err != nil {
		return fmt.Errorf("assistant: %w", err)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (a *AssistantConfig) validate() error {
	if a.MinCourseNameLen < 1 {
		return fmt.Errorf("min_course_name_len must be >= 1 (got %d)", a.MinCourseNameLen)
	}
	if a.UploadConcurrency < 1 {
		return fmt.Errorf("upload_concurrency must be >= 1 (got %d)", a.UploadConcurrency)
	}

	a.PlaceholderSlugs = ParseList(a.PlaceholderSlugsRaw)
	for i, s := range a.PlaceholderSlugs {
		a.PlaceholderSlugs[i] = strings.ToLower(s)
	}
	a.PlaceholderNames = ParseList(a.PlaceholderNamesRaw)

	names := ParseList(a.LanguagesRaw)
	if len(names) == 0 {
		return fmt.Errorf("languages must not be empty")
	}
	a.Languages = make([]domain.Language, len(names))
	for i, n := range names {
		a.Languages[i] = domain.Language(n)
	}

	return nil
}

// ParseList splits a comma-separated string, trimming blanks.
// An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the canonical calendar-date layout for exam dates.
const DateLayout = "2006-01-02"

// ExamDate is one scheduled exam for a course.
type ExamDate struct {
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

// FileMeta describes an uploaded course file. The extracted text itself
// is not part of the record.
type FileMeta struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	MimeType string    `json:"type,omitempty"`
	Size     int64     `json:"size,omitempty"`
	IsExam   bool      `json:"isExam,omitempty"`
}

// SurgeLogEntry records one completed practice/review session.
// Entries are keyed by SessionID; only Timestamp is user-editable.
// Unknown JSON fields are carried in Extra and round-trip unchanged.
type SurgeLogEntry struct {
	SessionID string
	Timestamp time.Time
	Extra     map[string]json.RawMessage
}

func (e SurgeLogEntry) MarshalJSON() ([]byte, error) {
	out := cloneRaw(e.Extra)
	if err := putRaw(out, "sessionId", e.SessionID); err != nil {
		return nil, err
	}
	if err := putRaw(out, "timestamp", e.Timestamp.UTC().Format(time.RFC3339Nano)); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

func (e *SurgeLogEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("surge log entry: %w", err)
	}
	var ts string
	if err := takeRaw(raw, "sessionId", &e.SessionID); err != nil {
		return err
	}
	if err := takeRaw(raw, "timestamp", &ts); err != nil {
		return err
	}
	if ts != "" {
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return fmt.Errorf("surge log entry %s: timestamp: %w", e.SessionID, err)
		}
		e.Timestamp = parsed
	}
	if len(raw) > 0 {
		e.Extra = raw
	}
	return nil
}

// CourseRecord is the per-course session record exchanged with the
// persistence layer and the client cache.
//
// A nil ExamDates or SurgeLog means "absent"; a non-nil empty slice means
// "present and empty". Marshal preserves that distinction.
type CourseRecord struct {
	Slug      string
	Subject   string
	Language  Language
	ExamDates []ExamDate
	SurgeLog  []SurgeLogEntry
	Files     []FileMeta
	Summary   string
	RawText   string
	Extra     map[string]json.RawMessage
}

var courseRecordKeys = []string{"slug", "subject", "language", "examDates", "surgeLog", "files", "summary", "rawText"}

func (r CourseRecord) MarshalJSON() ([]byte, error) {
	out := cloneRaw(r.Extra)
	for _, k := range courseRecordKeys {
		delete(out, k)
	}

	fields := []struct {
		key  string
		val  any
		omit bool
	}{
		{"slug", r.Slug, false},
		{"subject", r.Subject, false},
		{"language", r.Language, r.Language == ""},
		{"examDates", r.ExamDates, r.ExamDates == nil},
		{"surgeLog", r.SurgeLog, r.SurgeLog == nil},
		{"files", r.Files, r.Files == nil},
		{"summary", r.Summary, r.Summary == ""},
		{"rawText", r.RawText, r.RawText == ""},
	}
	for _, f := range fields {
		if f.omit {
			continue
		}
		if err := putRaw(out, f.key, f.val); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

func (r *CourseRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("course record: %w", err)
	}

	targets := map[string]any{
		"slug":      &r.Slug,
		"subject":   &r.Subject,
		"language":  &r.Language,
		"examDates": &r.ExamDates,
		"surgeLog":  &r.SurgeLog,
		"files":     &r.Files,
		"summary":   &r.Summary,
		"rawText":   &r.RawText,
	}
	for _, k := range courseRecordKeys {
		if err := takeRaw(raw, k, targets[k]); err != nil {
			return err
		}
	}
	if len(raw) > 0 {
		r.Extra = raw
	}
	return nil
}

// ExamDate returns the first exam date, if any.
func (r *CourseRecord) ExamDate() (ExamDate, bool) {
	if len(r.ExamDates) == 0 {
		return ExamDate{}, false
	}
	return r.ExamDates[0], true
}

func cloneRaw(in map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(in)+8)
	for k, v := range in {
		out[k] = v
	}
	return out
}

func putRaw(out map[string]json.RawMessage, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	out[key] = b
	return nil
}

// takeRaw decodes raw[key] into dst and removes the key. Missing keys and
// JSON null leave dst untouched.
func takeRaw(raw map[string]json.RawMessage, key string, dst any) error {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	delete(raw, key)
	if string(v) == "null" {
		return nil
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

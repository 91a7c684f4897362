// Package reconcile merges a client-cached course record with the
// server-authoritative one.
package reconcile

import (
	"encoding/json"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// LocalRecord is the client's cached copy of a course record.
type LocalRecord struct {
	domain.CourseRecord
	// SurgeLogWasNonEmpty is set by the client when its surge log held
	// entries before the user cleared it.
	SurgeLogWasNonEmpty bool
}

const clearedMarker = "surgeLogWasNonEmpty"

// MarshalJSON writes the record fields plus the clear marker.
func (l LocalRecord) MarshalJSON() ([]byte, error) {
	rec := l.CourseRecord
	if l.SurgeLogWasNonEmpty {
		rec.Extra = mergeExtra(rec.Extra, map[string]json.RawMessage{clearedMarker: json.RawMessage("true")})
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes the record fields plus the clear marker. The
// embedded record has its own decoder, so the marker is read separately
// and dropped from the record's extra fields.
func (l *LocalRecord) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &l.CourseRecord); err != nil {
		return err
	}
	if raw, ok := l.Extra[clearedMarker]; ok {
		if err := json.Unmarshal(raw, &l.SurgeLogWasNonEmpty); err != nil {
			return err
		}
		delete(l.Extra, clearedMarker)
		if len(l.Extra) == 0 {
			l.Extra = nil
		}
	}
	return nil
}

// Cleared reports whether the local surge log was explicitly emptied.
func (l LocalRecord) Cleared() bool {
	return l.SurgeLog != nil && len(l.SurgeLog) == 0 && l.SurgeLogWasNonEmpty
}

// Merge combines server and local. Entry existence in the surge log is
// server-authoritative; timestamps are local-authoritative:
//   - an explicitly cleared local log wins outright;
//   - a server entry that also exists locally keeps the local timestamp;
//   - local entries unknown to the server are appended in local order;
//   - every other field takes the local value when present locally.
//
// Neither input is modified.
func Merge(server domain.CourseRecord, local LocalRecord) domain.CourseRecord {
	out := server
	out.SurgeLog = mergeSurgeLog(server.SurgeLog, local)

	if out.Slug == "" {
		out.Slug = local.Slug
	}
	if local.Subject != "" {
		out.Subject = local.Subject
	}
	if local.Language != "" {
		out.Language = local.Language
	}
	if local.ExamDates != nil {
		out.ExamDates = append([]domain.ExamDate{}, local.ExamDates...)
	} else if server.ExamDates != nil {
		out.ExamDates = append([]domain.ExamDate{}, server.ExamDates...)
	}
	if local.Files != nil {
		out.Files = append([]domain.FileMeta{}, local.Files...)
	} else if server.Files != nil {
		out.Files = append([]domain.FileMeta{}, server.Files...)
	}
	if local.Summary != "" {
		out.Summary = local.Summary
	}
	if local.RawText != "" {
		out.RawText = local.RawText
	}
	out.Extra = mergeExtra(server.Extra, local.Extra)

	return out
}

func mergeSurgeLog(server []domain.SurgeLogEntry, local LocalRecord) []domain.SurgeLogEntry {
	if local.Cleared() {
		return []domain.SurgeLogEntry{}
	}
	if local.SurgeLog == nil {
		if server == nil {
			return nil
		}
		return append([]domain.SurgeLogEntry{}, server...)
	}

	localByID := make(map[string]domain.SurgeLogEntry, len(local.SurgeLog))
	for _, e := range local.SurgeLog {
		localByID[e.SessionID] = e
	}

	merged := make([]domain.SurgeLogEntry, 0, len(server)+len(local.SurgeLog))
	onServer := make(map[string]bool, len(server))
	for _, e := range server {
		onServer[e.SessionID] = true
		if l, ok := localByID[e.SessionID]; ok {
			e.Timestamp = l.Timestamp
		}
		merged = append(merged, e)
	}
	for _, e := range local.SurgeLog {
		if !onServer[e.SessionID] {
			merged = append(merged, e)
			onServer[e.SessionID] = true
		}
	}
	return merged
}

func mergeExtra(server, local map[string]json.RawMessage) map[string]json.RawMessage {
	if len(server) == 0 && len(local) == 0 {
		return nil
	}
	out := make(map[string]json.RawMessage, len(server)+len(local))
	for k, v := range server {
		out[k] = v
	}
	for k, v := range local {
		out[k] = v
	}
	return out
}

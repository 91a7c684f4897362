package coursecreate

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// ExamAnalysisKey is the record field holding the past-exam analysis.
const ExamAnalysisKey = "examAnalysis"

// enrich flags uploads that look like past exams and stores an analysis of
// them. Nothing here touches the subject or the flow.
func (s *Service) enrich(ctx context.Context, log *slog.Logger, c *creation) {
	var docs []domain.Document
	for _, d := range c.docs {
		if d.Text != "" {
			docs = append(docs, d)
		}
	}
	if len(docs) == 0 {
		return
	}

	ids, err := s.exams.ClassifyExams(ctx, docs)
	if err != nil {
		log.WarnContext(ctx, "classify exams", slog.String("error", err.Error()))
		return
	}
	isExam := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		isExam[id] = true
	}

	var exams []domain.Document
	for _, d := range docs {
		if isExam[d.Meta.ID] {
			exams = append(exams, d)
		}
	}
	if len(exams) == 0 {
		return
	}
	log.InfoContext(ctx, "past exams detected", slog.Int("count", len(exams)))

	analysis, err := s.exams.AnalyzeExams(ctx, c.subject.Name, exams)
	if err != nil {
		log.WarnContext(ctx, "analyze exams", slog.String("error", err.Error()))
	}

	err = s.updateRecord(ctx, c, func(rec *domain.CourseRecord) {
		for i := range rec.Files {
			if isExam[rec.Files[i].ID] {
				rec.Files[i].IsExam = true
			}
		}
		if analysis != "" {
			raw, _ := json.Marshal(analysis)
			if rec.Extra == nil {
				rec.Extra = make(map[string]json.RawMessage, 1)
			}
			rec.Extra[ExamAnalysisKey] = raw
		}
	})
	if err != nil {
		log.ErrorContext(ctx, "store exam analysis", slog.String("error", err.Error()))
	}
}

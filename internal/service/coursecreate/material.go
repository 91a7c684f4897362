package coursecreate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// materialize extracts upload text and stores the initial record. A file
// whose extraction fails keeps its metadata with no text.
func (s *Service) materialize(ctx context.Context, log *slog.Logger, c *creation) {
	c.docs = s.extractAll(ctx, log, c.req.Files)

	rec := initialRecord(c)
	if err := s.records.Put(ctx, c.userID, rec); err != nil {
		log.ErrorContext(ctx, "store initial record", slog.String("error", err.Error()))
		return
	}
	log.InfoContext(ctx, "course materialized",
		slog.Int("files", len(rec.Files)),
		slog.Int("raw_len", len(rec.RawText)),
	)
}

// initialRecord is the record as materialization writes it.
func initialRecord(c *creation) domain.CourseRecord {
	rec := domain.CourseRecord{
		Slug:    c.subject.Slug,
		Subject: c.subject.Name,
		RawText: combine(c.rawText(), c.docs),
	}
	for _, d := range c.docs {
		rec.Files = append(rec.Files, d.Meta)
	}
	return rec
}

func (s *Service) extractAll(ctx context.Context, log *slog.Logger, uploads []domain.Upload) []domain.Document {
	docs := make([]domain.Document, len(uploads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.UploadConcurrency)

	for i, up := range uploads {
		meta := up.Meta
		if meta.ID == uuid.Nil {
			meta.ID = uuid.New()
		}
		if meta.Size == 0 {
			meta.Size = int64(len(up.Data))
		}
		docs[i].Meta = meta

		g.Go(func() error {
			text, err := s.extractor.ExtractText(gctx, up)
			if err != nil {
				log.WarnContext(gctx, "extract file text",
					slog.String("file", meta.Name),
					slog.String("error", err.Error()),
				)
				return nil
			}
			docs[i].Text = strings.TrimSpace(text)
			return nil
		})
	}
	_ = g.Wait()

	return docs
}

// combine joins free text and document text into one material blob.
func combine(text string, docs []domain.Document) string {
	var parts []string
	if text != "" {
		parts = append(parts, text)
	}
	for _, d := range docs {
		if d.Text != "" {
			parts = append(parts, "## "+d.Meta.Name+"\n\n"+d.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}

// summarize asks the model for a summary and stores it in place of the raw
// text. On failure the raw text stays as the working context.
func (s *Service) summarize(ctx context.Context, log *slog.Logger, c *creation) {
	material := combine(c.rawText(), c.docs)
	if material == "" {
		return
	}

	summary, err := s.summary.Summarize(ctx, material)
	summary = strings.TrimSpace(summary)
	if err != nil || summary == "" {
		log.WarnContext(ctx, "summary unavailable, keeping raw text", slog.Any("error", err))
		return
	}
	c.summary = summary

	err = s.updateRecord(ctx, c, func(rec *domain.CourseRecord) {
		rec.Summary = summary
		rec.RawText = ""
	})
	if err != nil {
		log.ErrorContext(ctx, "store summary", slog.String("error", err.Error()))
	}
}

// updateRecord applies fn to the stored record in a transaction. A missing
// record is rebuilt from the flow state.
func (s *Service) updateRecord(ctx context.Context, c *creation, fn func(rec *domain.CourseRecord)) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rec, err := s.records.GetForUpdate(ctx, c.userID, c.subject.Slug)
		if errors.Is(err, domain.ErrNotFound) {
			initial := initialRecord(c)
			rec = &initial
		} else if err != nil {
			return fmt.Errorf("get record: %w", err)
		}
		fn(rec)
		return s.records.Put(ctx, c.userID, *rec)
	})
}

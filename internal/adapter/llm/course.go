package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// Summarize condenses course material into a study summary.
func (c *Client) Summarize(ctx context.Context, material string) (string, error) {
	if strings.TrimSpace(material) == "" {
		return "", domain.NewValidationError("material", "required")
	}
	out, err := c.complete(ctx, "", summaryPrompt(material), c.maxTokens)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// DetectName proposes a course name for the material.
func (c *Client) DetectName(ctx context.Context, material string) (string, error) {
	if strings.TrimSpace(material) == "" {
		return "", domain.NewValidationError("material", "required")
	}
	out, err := c.complete(ctx, "", namePrompt(material), 32)
	if err != nil {
		return "", fmt.Errorf("detect name: %w", err)
	}
	return cleanName(out), nil
}

type classifyResponse struct {
	Exams []string `json:"exams"`
}

// ClassifyExams returns the ids of the documents the model takes for past
// exams. Ids the model invents are dropped.
func (c *Client) ClassifyExams(ctx context.Context, docs []domain.Document) ([]uuid.UUID, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	out, err := c.complete(ctx, "", classifyPrompt(docs), c.summaryMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("classify exams: %w", err)
	}
	ids, err := parseExamIDs(out, docs)
	if err != nil {
		return nil, fmt.Errorf("classify exams: %w", err)
	}
	return ids, nil
}

func parseExamIDs(reply string, docs []domain.Document) ([]uuid.UUID, error) {
	jsonStr, err := extractJSON(reply)
	if err != nil {
		return nil, err
	}
	var resp classifyResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	known := make(map[uuid.UUID]bool, len(docs))
	for _, d := range docs {
		known[d.Meta.ID] = true
	}
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]bool, len(resp.Exams))
	for _, raw := range resp.Exams {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil || !known[id] || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

// AnalyzeExams writes a preparation guide from past exams.
func (c *Client) AnalyzeExams(ctx context.Context, course string, exams []domain.Document) (string, error) {
	if len(exams) == 0 {
		return "", nil
	}
	out, err := c.complete(ctx, "", analysisPrompt(course, exams), c.maxTokens)
	if err != nil {
		return "", fmt.Errorf("analyze exams: %w", err)
	}
	return strings.TrimSpace(out), nil
}

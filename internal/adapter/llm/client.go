// Package llm talks to the hosted language model: streamed chat replies and
// the one-shot prompts used by the course-creation pipeline.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/coursepilot-backend/internal/config"
)

// Client wraps the Anthropic messages API.
type Client struct {
	api              anthropic.Client
	model            string
	maxTokens        int64
	summaryMaxTokens int64
	log              *slog.Logger
}

// New creates a Client. Extra options are appended after the ones derived
// from cfg, so callers may override the base URL or HTTP client.
func New(log *slog.Logger, cfg config.LLMConfig, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.Timeout > 0 {
		base = append(base, option.WithRequestTimeout(cfg.Timeout))
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	summaryMaxTokens := cfg.SummaryMaxTokens
	if summaryMaxTokens <= 0 {
		summaryMaxTokens = 1024
	}

	return &Client{
		api:              anthropic.NewClient(append(base, opts...)...),
		model:            cfg.Model,
		maxTokens:        maxTokens,
		summaryMaxTokens: summaryMaxTokens,
		log:              log.With("adapter", "llm"),
	}
}

// complete sends a single user prompt and returns the concatenated text
// of the reply.
func (c *Client) complete(ctx context.Context, system, prompt string, maxTokens int64) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("llm api call: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("llm api call: empty response")
	}
	return b.String(), nil
}

// extractJSON finds the outermost JSON object in a model reply.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

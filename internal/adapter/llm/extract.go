package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

const mimePDF = "application/pdf"

var textExtensions = map[string]bool{
	".txt": true, ".md": true, ".markdown": true, ".csv": true,
	".tex": true, ".json": true, ".html": true, ".htm": true,
}

// ExtractText returns the text of an upload. Text files are decoded
// directly; PDFs are transcribed by the model.
func (c *Client) ExtractText(ctx context.Context, up domain.Upload) (string, error) {
	if len(up.Data) == 0 {
		return "", nil
	}

	switch kind := uploadKind(up.Meta); kind {
	case "text":
		if !utf8.Valid(up.Data) {
			return "", fmt.Errorf("extract %q: not valid UTF-8", up.Meta.Name)
		}
		return string(up.Data), nil
	case mimePDF:
		text, err := c.transcribePDF(ctx, up.Data)
		if err != nil {
			return "", fmt.Errorf("extract %q: %w", up.Meta.Name, err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("extract %q: unsupported type %q", up.Meta.Name, kind)
	}
}

// uploadKind classifies an upload by MIME type, falling back to the file
// extension.
func uploadKind(meta domain.FileMeta) string {
	mt := meta.MimeType
	if mt != "" {
		if parsed, _, err := mime.ParseMediaType(mt); err == nil {
			mt = parsed
		}
	}
	switch {
	case strings.HasPrefix(mt, "text/"), mt == "application/json":
		return "text"
	case mt == mimePDF:
		return mimePDF
	}

	ext := strings.ToLower(filepath.Ext(meta.Name))
	switch {
	case textExtensions[ext]:
		return "text"
	case ext == ".pdf":
		return mimePDF
	}
	if mt == "" {
		return "unknown"
	}
	return mt
}

func (c *Client) transcribePDF(ctx context.Context, data []byte) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
					Data: base64.StdEncoding.EncodeToString(data),
				}),
				anthropic.NewTextBlock("Transcribe the text of this document. Output only the text."),
			),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm api call: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

package llm

import (
	"context"
	"io"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/internal/stream"
)

// StreamChat starts a reply and returns it as a frame stream: text frames
// as the model writes, a name frame for the first turn of a chat, then done.
// A failed model call ends the stream with an error frame instead of done.
// Closing the reader aborts the call.
func (c *Client) StreamChat(ctx context.Context, req domain.ChatRequest) (io.ReadCloser, error) {
	msgs := messageParams(req.Messages)
	if len(msgs) == 0 {
		return nil, domain.NewValidationError("messages", "no user message")
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: chatSystemPrompt(req)}},
		Messages:  msgs,
	}

	var firstTurn string
	if len(msgs) == 1 {
		firstTurn = req.Messages[len(req.Messages)-1].Content
	}

	ctx, cancel := context.WithCancel(ctx)
	pr, pw := io.Pipe()
	go func() {
		defer cancel()
		c.pump(ctx, pw, params, firstTurn)
	}()
	return &cancelReader{PipeReader: pr, cancel: cancel}, nil
}

func (c *Client) pump(ctx context.Context, pw *io.PipeWriter, params anthropic.MessageNewParams, firstTurn string) {
	enc := stream.NewEncoder(pw)

	s := c.api.Messages.NewStreaming(ctx, params)
	defer s.Close()

	for s.Next() {
		event := s.Current()
		ev, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent)
		if !ok {
			continue
		}
		delta, ok := ev.Delta.AsAny().(anthropic.TextDelta)
		if !ok || delta.Text == "" {
			continue
		}
		if err := enc.Encode(stream.Frame{Type: stream.TypeText, Content: delta.Text}); err != nil {
			// Reader went away.
			pw.CloseWithError(err)
			return
		}
	}
	if err := s.Err(); err != nil {
		c.log.ErrorContext(ctx, "chat stream", slog.String("error", err.Error()))
		_ = enc.Encode(stream.Frame{Type: stream.TypeError, Content: "model stream failed"})
		pw.Close()
		return
	}

	if firstTurn != "" {
		title, err := c.complete(ctx, "", titlePrompt(firstTurn), 32)
		if err != nil {
			c.log.WarnContext(ctx, "chat title", slog.String("error", err.Error()))
		} else if title = cleanName(title); title != "" {
			_ = enc.Encode(stream.Frame{Type: stream.TypeName, Content: title})
		}
	}

	_ = enc.Encode(stream.Frame{Type: stream.TypeDone})
	pw.Close()
}

// messageParams converts the conversation, dropping empty turns and any
// assistant turns before the first user turn.
func messageParams(history []domain.ChatMessage) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(history))
	for _, m := range history {
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		switch m.Role {
		case domain.RoleUser:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(content)))
		case domain.RoleAssistant:
			if len(out) == 0 {
				continue
			}
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(content)))
		}
	}
	return out
}

// cancelReader aborts the model call when the consumer closes the stream.
type cancelReader struct {
	*io.PipeReader
	cancel context.CancelFunc
}

func (r *cancelReader) Close() error {
	r.cancel()
	return r.PipeReader.Close()
}

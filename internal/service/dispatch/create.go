package dispatch

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/internal/service/coursecreate"
)

// textParams carry course material, in the order they are joined.
var textParams = []string{"syllabus", "description", "topic", "text"}

// createCourse starts the creation pipeline in the background. A second
// request while a flow is running is rejected.
func (d *Dispatcher) createCourse(fromText bool) handler {
	return func(ctx context.Context, userID uuid.UUID, a domain.CanonicalAction, b *batchState) (Status, error) {
		req := coursecreate.Request{
			Name:     strings.TrimSpace(a.Param("name")),
			TextOnly: fromText,
		}

		var parts []string
		for _, k := range textParams {
			if v := strings.TrimSpace(a.Param(k)); v != "" {
				parts = append(parts, v)
			}
		}
		if fromText && len(parts) == 0 {
			parts = append(parts, strings.TrimSpace(b.Utterance))
		}
		req.Text = strings.Join(parts, "\n\n")
		if !fromText {
			req.Files = b.Files
		}

		if req.Name == "" && req.Text == "" && len(req.Files) == 0 {
			return "", unresolved("nothing to create a course from")
		}

		ticket, err := d.flows.TryBegin(userID)
		if err != nil {
			return "", err
		}

		// The flow outlives the request that triggered it.
		bg := context.WithoutCancel(ctx)
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					d.log.ErrorContext(bg, "creation flow panicked",
						slog.String("user_id", userID.String()),
						slog.Any("panic", r),
					)
					ticket.End()
				}
			}()
			d.creator.Run(bg, ticket, req)
		}()

		return StatusStarted, nil
	}
}

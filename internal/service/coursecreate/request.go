package coursecreate

import "github.com/heartmarshall/coursepilot-backend/internal/domain"

// Request describes one course to create.
type Request struct {
	// Name is the proposed display name; it may be a placeholder.
	Name string
	// Text is free-form material such as a pasted syllabus.
	Text string
	// Files are uploads attached to the triggering message.
	Files []domain.Upload
	// TextOnly marks flows started from pasted text rather than files.
	TextOnly bool
}

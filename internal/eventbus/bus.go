// Package eventbus fans out UI-facing notifications to per-user subscribers.
package eventbus

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// EventType identifies the event payload.
type EventType string

const (
	// EventNavigate asks the client to change route.
	EventNavigate EventType = "navigate"
	// EventUI toggles a client widget, such as the course modal.
	EventUI EventType = "ui"
	// EventCoursePreparing announces a placeholder course.
	EventCoursePreparing EventType = "course_preparing"
	// EventCourseCreated ends a creation flow, successfully or not.
	EventCourseCreated EventType = "course_created"
	// EventCourseLanguageChanged reports a persisted language change.
	EventCourseLanguageChanged EventType = "course_language_changed"
	// EventExamDateSet reports a persisted exam date.
	EventExamDateSet EventType = "exam_date_set"
	// EventQuickLearn asks the client to start a quick-learn lesson.
	EventQuickLearn EventType = "quick_learn"
	// EventTutorial carries tutorial playback text.
	EventTutorial EventType = "tutorial"
)

// Event is one notification. Only the fields relevant to Type are set.
type Event struct {
	Type     EventType `json:"type"`
	Route    string    `json:"route,omitempty"`
	Widget   string    `json:"widget,omitempty"`
	Slug     string    `json:"slug,omitempty"`
	Name     string    `json:"name,omitempty"`
	Language string    `json:"language,omitempty"`
	Date     string    `json:"date,omitempty"`
	Query    string    `json:"query,omitempty"`
	Failed   bool      `json:"failed,omitempty"`
	Step     int       `json:"step,omitempty"`
	Text     string    `json:"text,omitempty"`
	Done     bool      `json:"done,omitempty"`
	At       time.Time `json:"at"`

	Elements []domain.UIElement `json:"elements,omitempty"`
}

// Bus fans out events to per-user subscribers. Slow subscribers drop
// events rather than block publishers.
type Bus struct {
	mu    sync.Mutex
	subs  map[uuid.UUID]map[chan Event]struct{}
	log   *slog.Logger
	depth int
	now   func() time.Time
}

// New constructs a Bus.
func New(log *slog.Logger) *Bus {
	if log == nil {
		log = slog.Default()
	}
	return &Bus{
		subs:  make(map[uuid.UUID]map[chan Event]struct{}),
		log:   log.With("component", "eventbus"),
		depth: 64,
		now:   time.Now,
	}
}

// Subscribe registers a subscriber for the user and returns a channel + cancel.
// Cancel closes the channel and is safe to call more than once.
func (b *Bus) Subscribe(userID uuid.UUID) (<-chan Event, func()) {
	ch := make(chan Event, b.depth)

	b.mu.Lock()
	userSubs := b.subs[userID]
	if userSubs == nil {
		userSubs = make(map[chan Event]struct{})
		b.subs[userID] = userSubs
	}
	userSubs[ch] = struct{}{}
	count := len(userSubs)
	b.mu.Unlock()

	b.log.Debug("subscribe", slog.String("user_id", userID.String()), slog.Int("subs", count))

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			if subs := b.subs[userID]; subs != nil {
				delete(subs, ch)
				if len(subs) == 0 {
					delete(b.subs, userID)
				}
			}
			close(ch)
			b.mu.Unlock()
			b.log.Debug("unsubscribe", slog.String("user_id", userID.String()))
		})
	}
}

// Publish delivers event to every subscriber of the user. A zero At is
// stamped with the current time.
func (b *Bus) Publish(userID uuid.UUID, event Event) {
	if event.At.IsZero() {
		event.At = b.now().UTC()
	}

	// Sends happen under the lock so cancel cannot close a channel mid-send.
	b.mu.Lock()
	dropped := 0
	for sub := range b.subs[userID] {
		select {
		case sub <- event:
		default:
			dropped++
		}
	}
	b.mu.Unlock()

	if dropped > 0 {
		b.log.Warn("events dropped",
			slog.String("user_id", userID.String()),
			slog.String("type", string(event.Type)),
			slog.Int("count", dropped),
		)
	}
}

// Navigate publishes a route change.
func (b *Bus) Navigate(userID uuid.UUID, route string) {
	b.Publish(userID, Event{Type: EventNavigate, Route: route})
}

// ShowWidget publishes a UI toggle.
func (b *Bus) ShowWidget(userID uuid.UUID, widget string) {
	b.Publish(userID, Event{Type: EventUI, Widget: widget})
}

// QuickLearn publishes a quick-learn request for query.
func (b *Bus) QuickLearn(userID uuid.UUID, query string) {
	b.Publish(userID, Event{Type: EventQuickLearn, Query: query})
}

// CoursePreparing publishes a placeholder course.
func (b *Bus) CoursePreparing(userID uuid.UUID, slug, name string) {
	b.Publish(userID, Event{Type: EventCoursePreparing, Slug: slug, Name: name})
}

// CourseCreated publishes the end of a creation flow.
func (b *Bus) CourseCreated(userID uuid.UUID, slug, name string, failed bool) {
	b.Publish(userID, Event{Type: EventCourseCreated, Slug: slug, Name: name, Failed: failed})
}

// CourseLanguageChanged publishes a language change.
func (b *Bus) CourseLanguageChanged(userID uuid.UUID, slug, language string) {
	b.Publish(userID, Event{Type: EventCourseLanguageChanged, Slug: slug, Language: language})
}

// ExamDateSet publishes a new exam date.
func (b *Bus) ExamDateSet(userID uuid.UUID, slug, date string) {
	b.Publish(userID, Event{Type: EventExamDateSet, Slug: slug, Date: date})
}

// TutorialStep publishes tutorial playback. text is cumulative; elements
// are set on the final update of a step.
func (b *Bus) TutorialStep(userID uuid.UUID, step int, text string, elements []domain.UIElement, done bool) {
	b.Publish(userID, Event{Type: EventTutorial, Step: step, Text: text, Elements: elements, Done: done})
}

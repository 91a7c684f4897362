package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/directive"
	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// DefaultTutorialSteps is the onboarding script played by tutorial_continue.
var DefaultTutorialSteps = []string{
	"Welcome! I can turn your syllabus, notes or past exams into a course. " +
		"BUTTON:tutorial_next|label:Show me how|action:tutorial_continue",
	"Upload a file or paste your syllabus and I will create the course, summarize it and name it for you. " +
		"FILE_UPLOAD:tutorial_upload|message:Drop your syllabus here|action:create_course",
	"Tell me when your exam is, like \"my Calculus exam is in 3 weeks\", and I will plan your reviews around it. " +
		"BUTTON:tutorial_done|label:Got it|action:tutorial_continue",
}

type tutorialPublisher interface {
	TutorialStep(userID uuid.UUID, step int, text string, elements []domain.UIElement, done bool)
}

type tutorialState struct {
	next int
	gen  uint64
}

// Tutorial plays scripted assistant messages word by word. Playback polls
// its generation between words; Continue and Cancel replace it, which
// stops any running loop at its next step. Users at the top of the script
// have no entry.
type Tutorial struct {
	steps   []string
	publish tutorialPublisher
	tick    time.Duration
	log     *slog.Logger

	mu    sync.Mutex
	seq   uint64
	users map[uuid.UUID]*tutorialState
	wg    sync.WaitGroup
}

// NewTutorial creates a Tutorial. A nil steps uses DefaultTutorialSteps.
func NewTutorial(log *slog.Logger, publish tutorialPublisher, steps []string, tick time.Duration) *Tutorial {
	if steps == nil {
		steps = DefaultTutorialSteps
	}
	return &Tutorial{
		steps:   steps,
		publish: publish,
		tick:    tick,
		log:     log.With("component", "tutorial"),
		users:   make(map[uuid.UUID]*tutorialState),
	}
}

// Continue starts playback of the user's next step.
func (t *Tutorial) Continue(ctx context.Context, userID uuid.UUID) error {
	t.mu.Lock()
	st := t.users[userID]
	if st == nil {
		st = &tutorialState{}
		t.users[userID] = st
	}
	if st.next >= len(t.steps) {
		t.mu.Unlock()
		return fmt.Errorf("%w: tutorial finished", domain.ErrUnresolved)
	}
	// A new step supersedes one still playing.
	t.seq++
	st.gen = t.seq
	step, gen := st.next, st.gen
	st.next++
	t.mu.Unlock()

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.play(userID, gen, step)
	}()
	t.log.DebugContext(ctx, "tutorial step", slog.String("user_id", userID.String()), slog.Int("step", step+1))
	return nil
}

// Cancel stops running playback and restarts the tutorial from the top.
func (t *Tutorial) Cancel(userID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.users, userID)
}

// Wait blocks until every playback loop has returned.
func (t *Tutorial) Wait() {
	t.wg.Wait()
}

// tracked reports how many users have tutorial state.
func (t *Tutorial) tracked() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.users)
}

func (t *Tutorial) current(userID uuid.UUID, gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.users[userID]
	return st != nil && st.gen == gen
}

func (t *Tutorial) play(userID uuid.UUID, gen uint64, step int) {
	script := t.steps[step]
	words := strings.SplitAfter(script, " ")

	var sofar strings.Builder
	for _, w := range words {
		if !t.current(userID, gen) {
			return
		}
		sofar.WriteString(w)
		p := directive.Parse(sofar.String(), false)
		t.publish.TutorialStep(userID, step+1, p.Display, nil, false)
		if t.tick > 0 {
			time.Sleep(t.tick)
		}
	}

	if !t.current(userID, gen) {
		return
	}
	p := directive.Parse(script, true)
	t.publish.TutorialStep(userID, step+1, p.Display, p.Elements, true)
}

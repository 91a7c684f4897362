package dispatch

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

// Client routes.
const (
	RouteHome      = "/"
	RouteExamSnipe = "/exam-snipe"
	subjectsRoute  = "/subjects/"
)

// WidgetCourseModal is the course-creation modal.
const WidgetCourseModal = "course_modal"

// CourseRoute returns the route of a course page. page is "" for the
// overview, or "practice" / "surge".
func CourseRoute(slug, page string) string {
	r := subjectsRoute + url.PathEscape(slug)
	if page != "" {
		r += "/" + page
	}
	return r
}

// navigate opens a course page, or an explicit client route when the
// action carries one and names no course.
func (d *Dispatcher) navigate(ctx context.Context, userID uuid.UUID, a domain.CanonicalAction, b *batchState) (Status, error) {
	page := strings.ToLower(a.Param("page"))
	if page != "" && page != "practice" && page != "surge" {
		page = ""
	}

	if route := a.Param("route"); route != "" && a.Param("slug") == "" {
		if !strings.HasPrefix(route, "/") {
			return "", unresolved("route %q is not a client path", route)
		}
		d.notify.Navigate(userID, route)
		return StatusDone, nil
	}

	return d.navigatePage(page)(ctx, userID, a, b)
}

func (d *Dispatcher) navigatePage(page string) handler {
	return func(ctx context.Context, userID uuid.UUID, a domain.CanonicalAction, b *batchState) (Status, error) {
		s, err := d.resolveCourse(ctx, a, b)
		if err != nil {
			return "", err
		}
		d.notify.Navigate(userID, CourseRoute(s, page))
		return StatusDone, nil
	}
}

func (d *Dispatcher) startExamSnipe(_ context.Context, userID uuid.UUID, _ domain.CanonicalAction, _ *batchState) (Status, error) {
	d.notify.Navigate(userID, RouteExamSnipe)
	return StatusDone, nil
}

func (d *Dispatcher) openCourseModal(_ context.Context, userID uuid.UUID, _ domain.CanonicalAction, _ *batchState) (Status, error) {
	d.notify.ShowWidget(userID, WidgetCourseModal)
	return StatusDone, nil
}

// generateQuickLearn uses the action's query or topic, falling back to the
// user's message.
func (d *Dispatcher) generateQuickLearn(_ context.Context, userID uuid.UUID, a domain.CanonicalAction, b *batchState) (Status, error) {
	q := strings.TrimSpace(a.Param("query"))
	if q == "" {
		q = strings.TrimSpace(a.Param("topic"))
	}
	if q == "" {
		q = quickLearnQuery(b.Utterance)
	}
	if q == "" {
		return "", unresolved("no quick-learn topic")
	}
	d.notify.QuickLearn(userID, q)
	return StatusDone, nil
}

func (d *Dispatcher) tutorialContinue(ctx context.Context, userID uuid.UUID, _ domain.CanonicalAction, _ *batchState) (Status, error) {
	if err := d.tutor.Continue(ctx, userID); err != nil {
		return "", err
	}
	return StatusStarted, nil
}

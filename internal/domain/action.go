package domain

// Reserved action names consumed by the dispatcher.
const (
	ActionCreateCourse         = "create_course"
	ActionCreateCourseFromText = "create_course_from_text"
	ActionOpenCourseModal      = "open_course_modal"
	ActionNavigate             = "navigate"
	ActionNavigateCourse       = "navigate_course"
	ActionNavigatePractice     = "navigate_practice"
	ActionNavigateSurge        = "navigate_surge"
	ActionSetCourseLanguage    = "set_course_language"
	ActionSetExamDate          = "set_exam_date"
	ActionStartExamSnipe       = "start_exam_snipe"
	ActionGenerateQuickLearn   = "generate_quick_learn"
	ActionTutorialContinue     = "tutorial_continue"
)

// CanonicalAction is the deduplicated, authoritative form of all action
// directives sharing a name within one stream.
type CanonicalAction struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params"`
}

// Param returns the named parameter or "".
func (a CanonicalAction) Param(key string) string {
	return a.Params[key]
}

// UIElementType identifies a renderable widget.
type UIElementType string

const (
	UIElementButton     UIElementType = "button"
	UIElementFileUpload UIElementType = "file_upload"
)

func (t UIElementType) String() string { return string(t) }

// UIElement is a widget attached to an assistant message. It is replaced
// wholesale whenever the message text is reparsed.
type UIElement struct {
	Type    UIElementType     `json:"type"`
	ID      string            `json:"id"`
	Label   string            `json:"label,omitempty"`
	Message string            `json:"message,omitempty"`
	Action  string            `json:"action,omitempty"`
	Params  map[string]string `json:"params,omitempty"`
}

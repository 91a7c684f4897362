package llm

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

const directiveGuide = `You are the study assistant of a course-planning app. Reply in plain prose.
When the user asks for something the app can do, add a directive on its own line:

ACTION:<name>|key:value|key:value
BUTTON:<id>|label:<text>|action:<action name>
FILE_UPLOAD:<id>|message:<text>|action:<action name>

Available actions:
- create_course|name:<course name>|description:<what the course covers>
- create_course_from_text|name:<course name>|syllabus:<pasted text>
- open_course_modal
- navigate|slug:<course slug>|page:<optional page>
- navigate_course|slug:<course slug>
- navigate_practice|slug:<course slug>
- navigate_surge|slug:<course slug>
- set_course_language|slug:<course slug>|language:<language>
- set_exam_date|slug:<course slug>|date:<date, e.g. 2024-05-02 or "next friday">|exam:<optional exam name>
- start_exam_snipe
- generate_quick_learn|query:<topic>
- tutorial_continue

Rules:
- Use each action at most once per reply.
- Never put a pipe character inside a value.
- Use the slug of an existing course when you know it.`

// chatSystemPrompt builds the system prompt for a chat reply.
func chatSystemPrompt(req domain.ChatRequest) string {
	var b strings.Builder
	b.WriteString(directiveGuide)

	if len(req.Subjects) > 0 {
		b.WriteString("\n\nThe user's courses (name -> slug):\n")
		for _, s := range req.Subjects {
			fmt.Fprintf(&b, "- %s -> %s\n", s.Name, s.Slug)
		}
	} else {
		b.WriteString("\n\nThe user has no courses yet.")
	}

	if len(req.Attachments) > 0 {
		fmt.Fprintf(&b, "\nThe latest message has these files attached: %s.", strings.Join(req.Attachments, ", "))
	}
	return b.String()
}

func summaryPrompt(material string) string {
	return fmt.Sprintf(`Summarize the following course material for a student.
List the main topics, the key definitions and anything that looks examinable.
Answer in Markdown, no preamble.

Material:
%s`, clip(material, maxMaterialRunes))
}

func namePrompt(material string) string {
	return fmt.Sprintf(`Give a short, specific course name (2 to 6 words) for the material below.
Output ONLY the name, no quotes, no punctuation at the end.

Material:
%s`, clip(material, maxNameRunes))
}

func titlePrompt(utterance string) string {
	return fmt.Sprintf(`Write a title of at most 6 words for a chat that starts with this message.
Output ONLY the title.

Message:
%s`, clip(utterance, maxNameRunes))
}

func classifyPrompt(docs []domain.Document) string {
	var b strings.Builder
	b.WriteString(`Decide which of the documents below are past exams, practice exams or problem sets with exam questions.

Output ONLY a valid JSON object matching this exact schema:
{"exams": ["<document id>", ...]}

Documents:
`)
	for _, d := range docs {
		fmt.Fprintf(&b, "\n--- id: %s name: %s ---\n%s\n", d.Meta.ID, d.Meta.Name, clip(d.Text, maxExcerptRunes))
	}
	return b.String()
}

func analysisPrompt(course string, exams []domain.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, `These are past exams for the course %q.
Describe the recurring question types, the topics that carry the most weight and how to prepare.
Answer in Markdown, no preamble.
`, course)
	for _, d := range exams {
		fmt.Fprintf(&b, "\n--- %s ---\n%s\n", d.Meta.Name, clip(d.Text, maxMaterialRunes/len(exams)))
	}
	return b.String()
}

const (
	maxMaterialRunes = 60000
	maxExcerptRunes  = 2000
	maxNameRunes     = 4000
)

// clip truncates s to at most n runes.
func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// cleanName trims quotes, markdown and trailing punctuation from a
// one-line model answer.
func cleanName(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, "\"'`*#")
	s = strings.TrimRight(s, ".!")
	return strings.TrimSpace(s)
}

package domain

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is what the model endpoint receives for one reply.
type ChatRequest struct {
	Messages []ChatMessage
	// Subjects lets the model name existing courses by slug.
	Subjects []SubjectRef
	// Attachments are the names of files attached to the last message.
	Attachments []string
}

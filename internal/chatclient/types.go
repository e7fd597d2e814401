package chatclient

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation. History slices are ordered
// oldest first.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is the JSON body posted to <base>/api/llm/chat.
type Request struct {
	Question string    `json:"question"`
	History  []Message `json:"history"`
}

// Response is the JSON body returned by the backend. Answer is set when
// Success is true, Message when it is false.
type Response struct {
	Success bool   `json:"success"`
	Answer  string `json:"answer,omitempty"`
	Message string `json:"message,omitempty"`
}

package chatclient

import (
	"context"
	"slices"
	"sync"
)

// UnavailableMessage is what a chat UI shows in place of an answer when the
// backend could not be reached, whatever the cause.
const UnavailableMessage = "Sorry, the assistant is unavailable right now. Please try again later."

// Conversation is an in-memory chat session. It keeps the rolling history a
// chat panel owns and passes it to an Asker on every turn.
type Conversation struct {
	asker      Asker
	maxHistory int

	mu       sync.Mutex
	messages []Message
}

// NewConversation starts an empty session. maxHistory bounds the number of
// retained messages; zero or less keeps everything.
func NewConversation(asker Asker, maxHistory int) *Conversation {
	return &Conversation{asker: asker, maxHistory: maxHistory}
}

// Send asks question with the history that precedes it, then records the
// question and the reply. On failure the recorded reply is
// UnavailableMessage and the underlying error is returned alongside it.
func (c *Conversation) Send(ctx context.Context, question string) (string, error) {
	history := c.History()

	answer, err := c.asker.Ask(ctx, question, history)
	reply := answer
	if err != nil {
		reply = UnavailableMessage
	}

	c.mu.Lock()
	c.messages = append(c.messages,
		Message{Role: RoleUser, Content: question},
		Message{Role: RoleAssistant, Content: reply},
	)
	if c.maxHistory > 0 && len(c.messages) > c.maxHistory {
		c.messages = slices.Clone(c.messages[len(c.messages)-c.maxHistory:])
	}
	c.mu.Unlock()

	return reply, err
}

// History returns a copy of the recorded messages, oldest first.
func (c *Conversation) History() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.messages)
}

// Reset discards the recorded history.
func (c *Conversation) Reset() {
	c.mu.Lock()
	c.messages = nil
	c.mu.Unlock()
}

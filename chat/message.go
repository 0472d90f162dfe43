package chat

import "time"

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is one transcript entry of a chat session.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	ChatID    string    `json:"chat_id"`
}

// ChatSummary is one row of the chat history sidebar, derived from the
// persisted message set.
type ChatSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	LastMessage string    `json:"last_message"`
	Timestamp   time.Time `json:"timestamp"`
}

// User is the ambient authenticated identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Store is the remote persistence collaborator. ChatMessages returns rows
// ascending by persistence time, UserMessages descending; the server-assigned
// created_at is the authoritative ordering key across reloads.
type Store interface {
	Insert(userID string, msg Message) error
	ChatMessages(userID, chatID string) ([]Message, error)
	UserMessages(userID string) ([]Message, error)
	DeleteChat(userID, chatID string) error
}

// Completer is the remote completion collaborator. A failed completion
// returns a classified error, never partial text.
type Completer interface {
	Complete(prompt string) (string, error)
}

// Identity reports the signed-in user, if any. Read-only from this
// package's perspective.
type Identity interface {
	CurrentUser() (User, bool)
}

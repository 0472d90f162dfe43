package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"illuminati/chat-api/chat"
)

const messagesTable = "chat_history"

// Store persists chat messages in the chat_history table and implements the
// chat core's persistence collaborator.
type Store struct {
	client *supabase.Client
}

func NewStore(client *supabase.Client) *Store {
	return &Store{client: client}
}

// row mirrors a chat_history record. created_at is assigned server-side and
// is the authoritative ordering key across reloads, which is why inserts
// never send it.
type row struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ChatID    string    `json:"chat_id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

type insertRow struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	ChatID  string `json:"chat_id"`
	Content string `json:"content"`
	Sender  string `json:"sender"`
}

func (s *Store) Insert(userID string, msg chat.Message) error {
	record := insertRow{
		ID:      msg.ID,
		UserID:  userID,
		ChatID:  msg.ChatID,
		Content: msg.Content,
		Sender:  string(msg.Sender),
	}

	_, _, err := s.client.From(messagesTable).Insert(record, false, "", "", "").Execute()
	return err
}

// ChatMessages returns one chat's messages ascending by persistence time.
func (s *Store) ChatMessages(userID, chatID string) ([]chat.Message, error) {
	resp, _, err := s.client.From(messagesTable).
		Select("*", "", false).
		Eq("user_id", userID).
		Eq("chat_id", chatID).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, err
	}
	return decodeMessages(resp)
}

// UserMessages returns every message the user owns, newest first. The chat
// list projection relies on this ordering.
func (s *Store) UserMessages(userID string) ([]chat.Message, error) {
	resp, _, err := s.client.From(messagesTable).
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, err
	}
	return decodeMessages(resp)
}

func (s *Store) DeleteChat(userID, chatID string) error {
	_, _, err := s.client.From(messagesTable).
		Delete("", "").
		Eq("user_id", userID).
		Eq("chat_id", chatID).
		Execute()
	return err
}

func decodeMessages(resp []byte) ([]chat.Message, error) {
	var rows []row
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	messages := make([]chat.Message, 0, len(rows))
	for _, r := range rows {
		messages = append(messages, chat.Message{
			ID:        r.ID,
			Content:   r.Content,
			Sender:    chat.Sender(r.Sender),
			Timestamp: r.CreatedAt,
			ChatID:    r.ChatID,
		})
	}
	return messages, nil
}

package chat

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore serves a canned newest-first scan for projection tests.
type stubStore struct {
	memStore
	userMsgs []Message
	userErr  error
}

func (s *stubStore) UserMessages(userID string) ([]Message, error) {
	if s.userErr != nil {
		return nil, s.userErr
	}
	return s.userMsgs, nil
}

func projectionSession(store Store) *Session {
	return NewSession(store, completerFunc(func(string) (string, error) { return "", nil }), staticIdentity{user: testUser, ok: true})
}

func TestChatsGroupsNewestFirst(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStore{userMsgs: []Message{
		{ID: "3", ChatID: "chat-b", Content: "there", Sender: SenderAI, Timestamp: base.Add(3 * time.Second)},
		{ID: "2", ChatID: "chat-b", Content: "hi", Sender: SenderUser, Timestamp: base.Add(2 * time.Second)},
		{ID: "1", ChatID: "chat-a", Content: "hello", Sender: SenderUser, Timestamp: base.Add(time.Second)},
	}}

	chats := projectionSession(store).Chats()

	require.Len(t, chats, 2)
	assert.Equal(t, "chat-b", chats[0].ID)
	assert.Equal(t, "there", chats[0].Title)
	assert.Equal(t, "there", chats[0].LastMessage)
	assert.Equal(t, base.Add(3*time.Second), chats[0].Timestamp)
	assert.Equal(t, "chat-a", chats[1].ID)
	assert.Equal(t, "hello", chats[1].Title)
}

func TestChatsTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("x", 60)
	exact := strings.Repeat("y", 50)
	store := &stubStore{userMsgs: []Message{
		{ID: "2", ChatID: "chat-b", Content: long},
		{ID: "1", ChatID: "chat-a", Content: exact},
	}}

	chats := projectionSession(store).Chats()

	require.Len(t, chats, 2)
	assert.Equal(t, strings.Repeat("x", 50)+"...", chats[0].Title)
	assert.Equal(t, long, chats[0].LastMessage)
	assert.Equal(t, exact, chats[1].Title)
}

func TestChatsEqualTimestampsKeepSourceOrder(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStore{userMsgs: []Message{
		{ID: "1", ChatID: "chat-a", Content: "first in source order", Timestamp: ts},
		{ID: "2", ChatID: "chat-a", Content: "second in source order", Timestamp: ts},
	}}

	chats := projectionSession(store).Chats()

	require.Len(t, chats, 1)
	assert.Equal(t, "first in source order", chats[0].LastMessage)
}

func TestChatsReadErrorDegradesToEmpty(t *testing.T) {
	store := &stubStore{userErr: errors.New("db down")}
	s := projectionSession(store)

	chats := s.Chats()

	assert.Empty(t, chats)
	assert.NotNil(t, chats)
	// History is cosmetic: the failure never reaches the error field.
	assert.Empty(t, s.Err())
}

func TestChatsWithoutUserReturnsEmpty(t *testing.T) {
	s := NewSession(&stubStore{userMsgs: []Message{{ID: "1", ChatID: "chat-a", Content: "hello"}}},
		completerFunc(func(string) (string, error) { return "", nil }), staticIdentity{})

	assert.Empty(t, s.Chats())
}

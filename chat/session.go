package chat

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"illuminati/chat-api/config"
)

// Session owns the in-memory transcript of the active chat and reconciles
// optimistic local updates against the persistence and completion
// collaborators.
//
// The mutex guards only the state fields; collaborator calls run outside the
// lock. Two overlapping Sends are therefore legal and the transcript reflects
// the physical completion order of their persistence and completion steps,
// not the call order. The UI is expected to disable the input while a send is
// loading -- the machine itself does not enforce at-most-one-in-flight.
type Session struct {
	store     Store
	completer Completer
	identity  Identity

	now   func() time.Time
	newID func() string

	mu       sync.Mutex
	chatID   string
	messages []Message
	loading  bool
	errText  string
}

func NewSession(store Store, completer Completer, identity Identity) *Session {
	return &Session{
		store:     store,
		completer: completer,
		identity:  identity,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Snapshot is a point-in-time copy of the UI-observable session state.
type Snapshot struct {
	ChatID   string
	Messages []Message
	Loading  bool
	Err      string
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := make([]Message, len(s.messages))
	copy(msgs, s.messages)
	return Snapshot{ChatID: s.chatID, Messages: msgs, Loading: s.loading, Err: s.errText}
}

func (s *Session) Messages() []Message {
	return s.Snapshot().Messages
}

func (s *Session) ChatID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatID
}

func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errText
}

// SetChatID switches the active chat without touching the transcript.
// Callers normally follow up with LoadHistory.
func (s *Session) SetChatID(chatID string) {
	s.mu.Lock()
	s.chatID = chatID
	s.mu.Unlock()
}

func (s *Session) ClearError() {
	s.mu.Lock()
	s.errText = ""
	s.mu.Unlock()
}

// NewChat starts a fresh empty chat and returns its id. Nothing is persisted
// until the first message is sent, so abandoned chats never reach storage.
func (s *Session) NewChat() (string, error) {
	if _, ok := s.identity.CurrentUser(); !ok {
		return "", ErrNotAuthenticated
	}

	id := s.newID()
	s.mu.Lock()
	s.chatID = id
	s.messages = nil
	s.errText = ""
	s.mu.Unlock()
	return id, nil
}

// Send appends the user's message optimistically, persists it, asks the
// completion collaborator for a reply and persists and appends that too.
// Failures land in the error field; the optimistic user message is never
// rolled back, so the user can see what was attempted.
func (s *Session) Send(content string) {
	user, ok := s.identity.CurrentUser()
	if !ok {
		s.mu.Lock()
		s.errText = msgNotAuthenticated
		s.mu.Unlock()
		return
	}

	if strings.TrimSpace(content) == "" {
		return
	}

	s.mu.Lock()
	chatID := s.chatID
	if chatID == "" {
		chatID = s.newID()
		s.chatID = chatID
		s.messages = nil
	}
	userMsg := Message{
		ID:        s.newID(),
		Content:   content,
		Sender:    SenderUser,
		Timestamp: s.now(),
		ChatID:    chatID,
	}
	s.messages = append(s.messages, userMsg)
	s.loading = true
	s.errText = ""
	s.mu.Unlock()

	if err := s.store.Insert(user.ID, userMsg); err != nil {
		config.Logger.Error("Failed to save message:", err)
		s.fail(msgSaveFailed)
		return
	}

	reply, err := s.completer.Complete(content)
	if err != nil {
		config.Logger.Error("Failed to get AI response:", err)
		s.fail(completionMessage(err))
		return
	}

	aiMsg := Message{
		ID:        s.newID(),
		Content:   reply,
		Sender:    SenderAI,
		Timestamp: s.now(),
		ChatID:    chatID,
	}
	if err := s.store.Insert(user.ID, aiMsg); err != nil {
		config.Logger.Error("Failed to save AI message:", err)
		s.fail(msgSaveFailed)
		return
	}

	s.mu.Lock()
	s.messages = append(s.messages, aiMsg)
	s.loading = false
	s.mu.Unlock()
}

// LoadHistory replaces the transcript wholesale with the persisted history
// of chatID, defaulting to the active chat. With no chat to resolve it just
// clears the transcript. A read failure leaves the prior transcript
// untouched.
func (s *Session) LoadHistory(chatID string) {
	user, ok := s.identity.CurrentUser()
	if !ok {
		return
	}

	s.mu.Lock()
	if chatID == "" {
		chatID = s.chatID
	}
	s.mu.Unlock()

	if chatID == "" {
		s.mu.Lock()
		s.messages = nil
		s.mu.Unlock()
		return
	}

	msgs, err := s.store.ChatMessages(user.ID, chatID)
	if err != nil {
		config.Logger.Error("Failed to load chat history:", err)
		s.setError(msgLoadFailed)
		return
	}

	s.mu.Lock()
	s.messages = msgs
	s.chatID = chatID
	s.errText = ""
	s.mu.Unlock()
}

// Clear deletes the active chat's persisted rows, then resets the transcript
// and chat id. Without a user or an active chat it is a no-op, which also
// makes a second Clear in a row safe. On a delete failure local state is
// left as-is; the rows may still exist remotely.
func (s *Session) Clear() {
	user, ok := s.identity.CurrentUser()

	s.mu.Lock()
	chatID := s.chatID
	s.mu.Unlock()

	if !ok || chatID == "" {
		return
	}

	if err := s.store.DeleteChat(user.ID, chatID); err != nil {
		config.Logger.Error("Failed to clear chat history:", err)
		s.setError(msgClearFailed)
		return
	}

	s.mu.Lock()
	s.messages = nil
	s.chatID = ""
	s.errText = ""
	s.mu.Unlock()
}

func (s *Session) fail(text string) {
	s.mu.Lock()
	s.errText = text
	s.loading = false
	s.mu.Unlock()
}

func (s *Session) setError(text string) {
	s.mu.Lock()
	s.errText = text
	s.mu.Unlock()
}

package chat

import "illuminati/chat-api/config"

const titleLimit = 50

// Chats derives the history sidebar: one summary per chat, most recent
// first. The scan comes back newest-first, so the first row seen for a chat
// id supplies its preview; rows sharing a created_at keep whatever order the
// store returned. A read failure degrades to an empty list instead of
// touching the error field -- history is cosmetic next to the active
// transcript.
func (s *Session) Chats() []ChatSummary {
	user, ok := s.identity.CurrentUser()
	if !ok {
		return []ChatSummary{}
	}

	msgs, err := s.store.UserMessages(user.ID)
	if err != nil {
		config.Logger.Warn("Failed to load chats:", err)
		return []ChatSummary{}
	}

	seen := make(map[string]bool)
	summaries := []ChatSummary{}
	for _, msg := range msgs {
		if seen[msg.ChatID] {
			continue
		}
		seen[msg.ChatID] = true
		summaries = append(summaries, ChatSummary{
			ID:          msg.ChatID,
			Title:       previewTitle(msg.Content),
			LastMessage: msg.Content,
			Timestamp:   msg.Timestamp,
		})
	}
	return summaries
}

func previewTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleLimit {
		return content
	}
	return string(runes[:titleLimit]) + "..."
}

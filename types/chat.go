package types

import "illuminati/chat-api/chat"

type ChatRequest struct {
	Message string `json:"message"`
	ChatID  string `json:"chat_id,omitempty"`
}

type ChatResponse struct {
	Success      bool           `json:"success"`
	UserMessage  string         `json:"user_message,omitempty"`
	AIResponse   string         `json:"ai_response,omitempty"`
	ChatID       string         `json:"chat_id,omitempty"`
	Messages     []chat.Message `json:"messages,omitempty"`
	ErrorMessage string         `json:"error,omitempty"` // only set on failure
}

type GetMessagesResponse struct {
	Success  bool           `json:"success"`
	ChatID   string         `json:"chat_id"`
	Messages []chat.Message `json:"messages"`
}

type NewChatResponse struct {
	Success bool   `json:"success"`
	ChatID  string `json:"chat_id"`
}

type ClearChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type GetChatsResponse struct {
	Success bool               `json:"success"`
	Chats   []chat.ChatSummary `json:"chats"`
}

package routes

import (
	"net/http"

	"illuminati/chat-api/handlers"
)

// RegisterChatRoutes registers all chat-related routes
func RegisterChatRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("POST /chat", h.Chat)
	mux.HandleFunc("GET /chat", h.Messages)
	mux.HandleFunc("POST /chat/new", h.NewChat)
	mux.HandleFunc("DELETE /chat", h.ClearChat)
	mux.HandleFunc("GET /chats", h.Chats)
}

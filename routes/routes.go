package routes

import (
	"net/http"

	"illuminati/chat-api/handlers"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux, h *handlers.Handler) {
	RegisterAuthRoutes(mux, h)
	RegisterChatRoutes(mux, h)
}

package handlers

import (
	"net/http"

	"illuminati/chat-api/chat"
	"illuminati/chat-api/config"
	"illuminati/chat-api/supabase"
)

// Handler bundles the service-wide dependencies: the environment config for
// building per-request Supabase clients, and the shared completion client.
type Handler struct {
	cfg       config.Config
	completer chat.Completer
}

func New(cfg config.Config, completer chat.Completer) *Handler {
	return &Handler{cfg: cfg, completer: completer}
}

// sessionFromRequest rebuilds the caller's session state machine: a
// user-scoped store and identity from the request JWT plus the shared
// completer. Writes the error response itself when auth fails.
func (h *Handler) sessionFromRequest(w http.ResponseWriter, r *http.Request) (*chat.Session, bool) {
	if r.Header.Get("Authorization") == "" {
		config.Logger.Warn("Missing Authorization header")
		writeError(w, "Missing Authorization header", http.StatusUnauthorized)
		return nil, false
	}

	client, user, err := supabase.ClientFromRequest(h.cfg, r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Invalid Authorization header", http.StatusUnauthorized)
		return nil, false
	}

	sess := chat.NewSession(supabase.NewStore(client), h.completer, supabase.NewIdentity(user))
	return sess, true
}

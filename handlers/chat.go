package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"illuminati/chat-api/chat"
	"illuminati/chat-api/types"
)

// Chat handles POST /chat: the optimistic send-message flow. With no chat_id
// the session auto-provisions a fresh chat; with one, the persisted history
// is loaded first so the response carries the full transcript.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, "Missing message", http.StatusBadRequest)
		return
	}

	sess, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	if req.ChatID != "" {
		if _, err := uuid.Parse(req.ChatID); err != nil {
			writeError(w, "Invalid chat_id", http.StatusBadRequest)
			return
		}
		sess.SetChatID(req.ChatID)
		sess.LoadHistory("")
	}

	sess.Send(req.Message)

	snap := sess.Snapshot()
	resp := types.ChatResponse{
		Success:      snap.Err == "",
		UserMessage:  req.Message,
		ChatID:       snap.ChatID,
		Messages:     snap.Messages,
		ErrorMessage: snap.Err,
	}
	if snap.Err == "" {
		if n := len(snap.Messages); n > 0 && snap.Messages[n-1].Sender == chat.SenderAI {
			resp.AIResponse = snap.Messages[n-1].Content
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Messages handles GET /chat?chat_id=...: loads one chat's transcript.
func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	chatID := r.URL.Query().Get("chat_id")
	if chatID == "" {
		writeError(w, "Missing chat_id", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(chatID); err != nil {
		writeError(w, "Invalid chat_id", http.StatusBadRequest)
		return
	}

	sess, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	sess.LoadHistory(chatID)
	snap := sess.Snapshot()
	if snap.Err != "" {
		writeError(w, snap.Err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetMessagesResponse{
		Success:  true,
		ChatID:   snap.ChatID,
		Messages: snap.Messages,
	})
}

// NewChat handles POST /chat/new. The id is only reserved client-side;
// nothing is persisted until the first message.
func (h *Handler) NewChat(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	chatID, err := sess.NewChat()
	if err != nil {
		writeError(w, "Please login to chat", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, types.NewChatResponse{
		Success: true,
		ChatID:  chatID,
	})
}

// ClearChat handles DELETE /chat?chat_id=...: deletes the chat's persisted
// rows. Clearing an already-cleared chat succeeds.
func (h *Handler) ClearChat(w http.ResponseWriter, r *http.Request) {
	chatID := r.URL.Query().Get("chat_id")
	if chatID == "" {
		writeError(w, "Missing chat_id", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(chatID); err != nil {
		writeError(w, "Invalid chat_id", http.StatusBadRequest)
		return
	}

	sess, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	sess.SetChatID(chatID)
	sess.Clear()
	if errText := sess.Err(); errText != "" {
		writeError(w, errText, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.ClearChatResponse{
		Success: true,
		Message: "Chat history cleared",
	})
}

// Chats handles GET /chats: the history sidebar summaries. Always succeeds;
// a read failure degrades to an empty list.
func (h *Handler) Chats(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFromRequest(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, types.GetChatsResponse{
		Success: true,
		Chats:   sess.Chats(),
	})
}

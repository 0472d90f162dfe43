package chat

import "errors"

// ErrNotAuthenticated is returned by operations that require a signed-in user.
var ErrNotAuthenticated = errors.New("user not authenticated")

// User-visible error texts. Collaborator failures never escape the session;
// they land in its error field as one of these.
const (
	msgNotAuthenticated = "Please login to chat"
	msgSaveFailed       = "Failed to save message"
	msgLoadFailed       = "Failed to load chat history"
	msgClearFailed      = "Failed to clear chat history"
	msgCompletionFailed = "Failed to get response"
)

// completionMessage picks the text shown to the user for a failed
// completion. Classified failures carry their own wording; anything else
// degrades to the generic message.
func completionMessage(err error) string {
	var uf interface{ UserMessage() string }
	if errors.As(err, &uf) {
		return uf.UserMessage()
	}
	return msgCompletionFailed
}

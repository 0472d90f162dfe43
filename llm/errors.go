package llm

// Kind classifies a completion failure.
type Kind int

const (
	KindEmptyPrompt Kind = iota
	KindSafetyBlocked
	KindAuth
	KindNetwork
	KindUnexpected
)

// Standard user-facing texts per failure kind.
const (
	textEmptyPrompt   = "Empty message provided"
	textSafetyBlocked = "Response blocked due to safety concerns"
	textInvalidKey    = "Invalid API key configuration"
	textMissingKey    = "No API key found. Please add an API key."
	textNetwork       = "Network connection error"
	textEmptyResponse = "Empty response from API"
	textUnexpected    = "An unexpected error occurred"
)

// Error is a classified completion failure. Text is written for the end
// user; the chat core surfaces it verbatim in the session's error field.
type Error struct {
	Kind Kind
	Text string
}

func (e *Error) Error() string {
	return e.Text
}

func (e *Error) UserMessage() string {
	return e.Text
}

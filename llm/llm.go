package llm

import "fmt"

// Completer is the completion surface the chat core consumes.
type Completer interface {
	Complete(prompt string) (string, error)
}

type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// New builds the completion client for the configured provider.
func New(provider Provider, geminiKey, openaiKey string) (Completer, error) {
	switch provider {
	case ProviderGemini:
		return NewGemini(geminiKey), nil
	case ProviderOpenAI:
		return NewOpenAI(openaiKey), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s (supported: %s, %s)", provider, ProviderGemini, ProviderOpenAI)
	}
}

package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI is the alternate completion provider.
type OpenAI struct {
	client *openai.Client
	apiKey string
	model  string
}

func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(apiKey),
		apiKey: apiKey,
		model:  openai.GPT3Dot5Turbo,
	}
}

// Complete sends prompt as a single-turn chat completion and classifies
// failures the same way the Gemini client does.
func (o *OpenAI) Complete(prompt string) (string, error) {
	if o.apiKey == "" {
		return "", &Error{Kind: KindAuth, Text: textMissingKey}
	}
	if strings.TrimSpace(prompt) == "" {
		return "", &Error{Kind: KindEmptyPrompt, Text: textEmptyPrompt}
	}

	resp, err := o.client.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		TopP:        0.95,
		MaxTokens:   2048,
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &Error{Kind: KindUnexpected, Text: textEmptyResponse}
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return "", &Error{Kind: KindSafetyBlocked, Text: textSafetyBlocked}
	}

	return choice.Message.Content, nil
}

func classifyOpenAIError(err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden {
			return &Error{Kind: KindAuth, Text: textInvalidKey}
		}
		return &Error{Kind: KindUnexpected, Text: textUnexpected}
	}
	return &Error{Kind: KindNetwork, Text: textNetwork}
}

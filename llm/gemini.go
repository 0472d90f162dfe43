package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const geminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

var geminiSafetySettings = []map[string]string{
	{"category": "HARM_CATEGORY_HARASSMENT", "threshold": "BLOCK_MEDIUM_AND_ABOVE"},
	{"category": "HARM_CATEGORY_HATE_SPEECH", "threshold": "BLOCK_MEDIUM_AND_ABOVE"},
	{"category": "HARM_CATEGORY_SEXUALLY_EXPLICIT", "threshold": "BLOCK_MEDIUM_AND_ABOVE"},
	{"category": "HARM_CATEGORY_DANGEROUS_CONTENT", "threshold": "BLOCK_MEDIUM_AND_ABOVE"},
}

// Gemini talks to the Generative Language REST API.
type Gemini struct {
	apiKey string
	url    string
	client *http.Client
}

func NewGemini(apiKey string) *Gemini {
	return &Gemini{
		apiKey: apiKey,
		url:    geminiURL,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Complete sends prompt as a single-turn generation request and returns the
// response text, or a classified *Error.
func (g *Gemini) Complete(prompt string) (string, error) {
	if g.apiKey == "" {
		return "", &Error{Kind: KindAuth, Text: textMissingKey}
	}
	if strings.TrimSpace(prompt) == "" {
		return "", &Error{Kind: KindEmptyPrompt, Text: textEmptyPrompt}
	}

	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"safetySettings": geminiSafetySettings,
		"generationConfig": map[string]interface{}{
			"temperature":     0.7,
			"topK":            40,
			"topP":            0.95,
			"maxOutputTokens": 2048,
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", g.url+"?key="+g.apiKey, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Text: textNetwork}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", &Error{Kind: KindAuth, Text: textInvalidKey}
	default:
		return "", &Error{Kind: KindUnexpected, Text: textUnexpected}
	}

	var res map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", &Error{Kind: KindUnexpected, Text: textUnexpected}
	}

	if blocked(res) {
		return "", &Error{Kind: KindSafetyBlocked, Text: textSafetyBlocked}
	}

	text, err := extractGeminiText(res)
	if err != nil {
		return "", &Error{Kind: KindUnexpected, Text: textEmptyResponse}
	}

	return text, nil
}

// blocked reports whether the prompt or the generated candidate was stopped
// by a safety filter.
func blocked(res map[string]interface{}) bool {
	if fb, ok := res["promptFeedback"].(map[string]interface{}); ok {
		if reason, ok := fb["blockReason"].(string); ok && reason != "" {
			return true
		}
	}
	if candidates, ok := res["candidates"].([]interface{}); ok && len(candidates) > 0 {
		if candidate, ok := candidates[0].(map[string]interface{}); ok {
			if finish, ok := candidate["finishReason"].(string); ok && finish == "SAFETY" {
				return true
			}
		}
	}
	return false
}

// extractGeminiText pulls candidates[0].content.parts[0].text out of the
// response payload.
func extractGeminiText(res map[string]interface{}) (string, error) {
	candidates, ok := res["candidates"].([]interface{})
	if !ok || len(candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate, ok := candidates[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid candidate format")
	}

	content, ok := candidate["content"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("no content in candidate")
	}

	parts, ok := content["parts"].([]interface{})
	if !ok || len(parts) == 0 {
		return "", fmt.Errorf("no parts in content")
	}

	part, ok := parts[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid part format")
	}

	text, ok := part["text"].(string)
	if !ok {
		return "", fmt.Errorf("no text in part")
	}

	return text, nil
}

package llm

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOpenAI(baseURL string) *OpenAI {
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = baseURL + "/v1"
	return &OpenAI{
		client: openai.NewClientWithConfig(cfg),
		apiKey: "test-key",
		model:  openai.GPT3Dot5Turbo,
	}
}

func openaiResponse(content, finishReason string) string {
	return fmt.Sprintf(`{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": %q}, "finish_reason": %q}]
	}`, content, finishReason)
}

func TestOpenAICompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, openaiResponse("hello there", "stop"))
	}))
	defer srv.Close()

	text, err := testOpenAI(srv.URL).Complete("hi")
	require.NoError(t, err)
	assert.Equal(t, "hello there", text)
}

func TestOpenAIContentFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, openaiResponse("", "content_filter"))
	}))
	defer srv.Close()

	_, err := testOpenAI(srv.URL).Complete("something dicey")
	requireKind(t, err, KindSafetyBlocked)
}

func TestOpenAIAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`)
	}))
	defer srv.Close()

	_, err := testOpenAI(srv.URL).Complete("hi")
	clsErr := requireKind(t, err, KindAuth)
	assert.Equal(t, "Invalid API key configuration", clsErr.Text)
}

func TestOpenAINetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := testOpenAI(srv.URL).Complete("hi")
	requireKind(t, err, KindNetwork)
}

func TestOpenAIEmptyPromptAndMissingKey(t *testing.T) {
	o := NewOpenAI("key")
	_, err := o.Complete(" ")
	requireKind(t, err, KindEmptyPrompt)

	o = NewOpenAI("")
	_, err = o.Complete("hi")
	requireKind(t, err, KindAuth)
}

package llm

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGemini(url string) *Gemini {
	g := NewGemini("test-key")
	g.url = url
	return g
}

func geminiTextResponse(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]},"finishReason":"STOP"}]}`, text)
}

func requireKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	require.Error(t, err)
	var clsErr *Error
	require.ErrorAs(t, err, &clsErr)
	assert.Equal(t, kind, clsErr.Kind)
	return clsErr
}

func TestGeminiCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Contains(t, req, "contents")
		assert.Contains(t, req, "generationConfig")
		assert.Contains(t, req, "safetySettings")

		fmt.Fprint(w, geminiTextResponse("All roads lead to the pyramid."))
	}))
	defer srv.Close()

	text, err := testGemini(srv.URL).Complete("tell me a secret")
	require.NoError(t, err)
	assert.Equal(t, "All roads lead to the pyramid.", text)
}

func TestGeminiEmptyPromptSkipsRequest(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	_, err := testGemini(srv.URL).Complete("   ")
	clsErr := requireKind(t, err, KindEmptyPrompt)
	assert.Equal(t, "Empty message provided", clsErr.Text)
	assert.Zero(t, calls)
}

func TestGeminiMissingAPIKey(t *testing.T) {
	g := NewGemini("")
	_, err := g.Complete("hi")
	clsErr := requireKind(t, err, KindAuth)
	assert.Equal(t, "No API key found. Please add an API key.", clsErr.Text)
}

func TestGeminiPromptBlocked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"promptFeedback":{"blockReason":"SAFETY"}}`)
	}))
	defer srv.Close()

	_, err := testGemini(srv.URL).Complete("something dicey")
	clsErr := requireKind(t, err, KindSafetyBlocked)
	assert.Equal(t, "Response blocked due to safety concerns", clsErr.Text)
}

func TestGeminiCandidateBlocked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[{"finishReason":"SAFETY"}]}`)
	}))
	defer srv.Close()

	_, err := testGemini(srv.URL).Complete("something dicey")
	requireKind(t, err, KindSafetyBlocked)
}

func TestGeminiAuthStatuses(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := testGemini(srv.URL).Complete("hi")
		clsErr := requireKind(t, err, KindAuth)
		assert.Equal(t, "Invalid API key configuration", clsErr.Text)
		srv.Close()
	}
}

func TestGeminiServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testGemini(srv.URL).Complete("hi")
	requireKind(t, err, KindUnexpected)
}

func TestGeminiNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := testGemini(srv.URL).Complete("hi")
	clsErr := requireKind(t, err, KindNetwork)
	assert.Equal(t, "Network connection error", clsErr.Text)
}

func TestGeminiEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	_, err := testGemini(srv.URL).Complete("hi")
	clsErr := requireKind(t, err, KindUnexpected)
	assert.Equal(t, "Empty response from API", clsErr.Text)
}

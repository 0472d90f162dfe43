package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsProvider(t *testing.T) {
	c, err := New(ProviderGemini, "gk", "ok")
	require.NoError(t, err)
	assert.IsType(t, &Gemini{}, c)

	c, err = New(ProviderOpenAI, "gk", "ok")
	require.NoError(t, err)
	assert.IsType(t, &OpenAI{}, c)
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(Provider("claude"), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider")
}

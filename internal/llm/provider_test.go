package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProvider(t *testing.T) {
	cases := []struct {
		name string
		want Provider
	}{
		{"groq", ProviderGroq},
		{"gemini", ProviderGemini},
		{"openai", ProviderOpenAI},
		{"openrouter", ProviderOpenRouter},
		{"OpenAI", ProviderOpenAI},
		{"  groq ", ProviderGroq},
	}

	for _, tc := range cases {
		got, err := ParseProvider(tc.name)
		assert.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestParseProviderRejectsUnknown(t *testing.T) {
	for _, name := range []string{"foo", "", "anthropic", "ollama"} {
		_, err := ParseProvider(name)
		assert.ErrorIs(t, err, ErrUnsupportedProvider, name)
	}
}

func TestCallErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &CallError{Provider: ProviderGroq, Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "groq call failed: boom", err.Error())
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Aditya190803/FastWrite-API/config"
)

// Provider is the closed set of supported LLM providers.
type Provider string

const (
	ProviderGroq       Provider = "groq"
	ProviderGemini     Provider = "gemini"
	ProviderOpenAI     Provider = "openai"
	ProviderOpenRouter Provider = "openrouter"
)

// ErrUnsupportedProvider indicates a provider name outside the closed set.
var ErrUnsupportedProvider = errors.New("unsupported LLM provider")

// ParseProvider normalizes a provider name and rejects unrecognized values.
func ParseProvider(name string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case ProviderGroq, ProviderGemini, ProviderOpenAI, ProviderOpenRouter:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedProvider, name)
	}
}

// CallError represents a failed documentation-generation call.
type CallError struct {
	Provider Provider
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Provider, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// Client generates documentation for a single source file.
type Client interface {
	GenerateDocumentation(ctx context.Context, code, prompt string) (string, error)
}

// Dispatcher builds a Client for a provider with a caller-supplied API key
// and model name.
type Dispatcher interface {
	New(ctx context.Context, provider Provider, apiKey, model string) (Client, error)
}

// Factory is the default Dispatcher backed by the real provider endpoints.
type Factory struct {
	cfg config.LLMConfig
}

func NewFactory(cfg config.LLMConfig) *Factory {
	return &Factory{cfg: cfg}
}

func (f *Factory) New(ctx context.Context, provider Provider, apiKey, model string) (Client, error) {
	timeout := f.cfg.Timeout()
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAIClient(ctx, provider, apiKey, model, f.cfg.OpenAIBaseURL, f.cfg.MaxTokens, timeout)
	case ProviderGroq:
		baseURL := f.cfg.GroqBaseURL
		if baseURL == "" {
			baseURL = defaultGroqBaseURL
		}
		return newOpenAIClient(ctx, provider, apiKey, model, baseURL, f.cfg.MaxTokens, timeout)
	case ProviderOpenRouter:
		baseURL := f.cfg.OpenRouterBaseURL
		if baseURL == "" {
			baseURL = defaultOpenRouterBaseURL
		}
		return newOpenAIClient(ctx, provider, apiKey, model, baseURL, f.cfg.MaxTokens, timeout)
	case ProviderGemini:
		return newGeminiClient(ctx, apiKey, model, f.cfg.MaxTokens, timeout)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}

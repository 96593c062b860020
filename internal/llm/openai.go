package llm

import (
	"context"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"k8s.io/klog/v2"
)

const (
	defaultGroqBaseURL       = "https://api.groq.com/openai/v1"
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
)

// newOpenAIClient builds a chat client for any of the OpenAI-compatible
// providers (openai, groq, openrouter). An empty baseURL means the default
// OpenAI endpoint.
func newOpenAIClient(ctx context.Context, provider Provider, apiKey, modelName, baseURL string, maxTokens int, timeout time.Duration) (Client, error) {
	cfg := &openai.ChatModelConfig{
		APIKey:  apiKey,
		Model:   modelName,
		Timeout: timeout,
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if maxTokens > 0 {
		cfg.MaxTokens = &maxTokens
	}

	chatModel, err := openai.NewChatModel(ctx, cfg)
	if err != nil {
		klog.Errorf("failed to create chat model: provider=%s, error=%v", provider, err)
		return nil, &CallError{Provider: provider, Err: err}
	}

	return &chatClient{provider: provider, chatModel: chatModel, timeout: timeout}, nil
}

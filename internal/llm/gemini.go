package llm

import (
	"context"
	"time"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"google.golang.org/genai"
	"k8s.io/klog/v2"
)

// newGeminiClient builds a chat client over the official genai SDK.
func newGeminiClient(ctx context.Context, apiKey, modelName string, maxTokens int, timeout time.Duration) (Client, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		klog.Errorf("failed to create genai client: %v", err)
		return nil, &CallError{Provider: ProviderGemini, Err: err}
	}

	cfg := &gemini.Config{
		Client: cli,
		Model:  modelName,
	}
	if maxTokens > 0 {
		cfg.MaxTokens = &maxTokens
	}

	chatModel, err := gemini.NewChatModel(ctx, cfg)
	if err != nil {
		klog.Errorf("failed to create chat model: provider=%s, error=%v", ProviderGemini, err)
		return nil, &CallError{Provider: ProviderGemini, Err: err}
	}

	return &chatClient{provider: ProviderGemini, chatModel: chatModel, timeout: timeout}, nil
}

package llm

import (
	"context"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"k8s.io/klog/v2"
)

// chatClient wraps an Eino ChatModel behind the Client interface.
// Both the OpenAI-compatible and the Gemini models satisfy model.BaseChatModel.
type chatClient struct {
	provider  Provider
	chatModel model.BaseChatModel
	timeout   time.Duration
}

func (c *chatClient) GenerateDocumentation(ctx context.Context, code, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	klog.V(6).Infof("generating documentation: provider=%s, codeLength=%d", c.provider, len(code))

	messages := []*schema.Message{
		schema.SystemMessage(prompt),
		schema.UserMessage(code),
	}

	resp, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		klog.Errorf("documentation generation failed: provider=%s, error=%v", c.provider, err)
		return "", &CallError{Provider: c.provider, Err: err}
	}

	klog.V(6).Infof("documentation generated: provider=%s, responseLength=%d", c.provider, len(resp.Content))
	return resp.Content, nil
}

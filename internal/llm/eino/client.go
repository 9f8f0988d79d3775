package eino

import (
	"context"
	"fmt"
	"strings"
	"time"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"resume-ai-backend/internal/llm"
)

// Config configures the eino OpenAI chat model.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client implements llm.Completer on top of an eino chat model.
type Client struct {
	chatModel model.BaseChatModel
}

// NewClient builds an eino OpenAI chat model. Model and temperature are
// supplied per call, so cfg.Model is only the fallback.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	chatModel, err := einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create eino chat model: %w", err)
	}
	return NewFromModel(chatModel), nil
}

// NewFromModel wraps an existing chat model.
func NewFromModel(m model.BaseChatModel) *Client {
	return &Client{chatModel: m}
}

// Complete generates one reply for the request messages.
func (c *Client) Complete(ctx context.Context, in llm.CompletionRequest) (llm.Completion, error) {
	msgs := make([]*schema.Message, 0, len(in.Messages))
	for _, m := range in.Messages {
		msgs = append(msgs, toSchemaMessage(m))
	}

	opts := []model.Option{model.WithTemperature(in.Temperature)}
	if m := strings.TrimSpace(in.Model); m != "" {
		opts = append(opts, model.WithModel(m))
	}

	out, err := c.chatModel.Generate(ctx, msgs, opts...)
	if err != nil {
		return llm.Completion{}, err
	}
	if out == nil {
		return llm.Completion{}, llm.ErrNoChoices
	}

	completion := llm.Completion{Content: out.Content, Model: in.Model}
	if out.ResponseMeta != nil && out.ResponseMeta.Usage != nil {
		u := out.ResponseMeta.Usage
		completion.Usage = &llm.Usage{
			PromptTokens:     u.PromptTokens,
			CompletionTokens: u.CompletionTokens,
			TotalTokens:      u.TotalTokens,
		}
	}
	return completion, nil
}

func toSchemaMessage(m llm.Message) *schema.Message {
	switch m.Role {
	case llm.RoleSystem:
		return schema.SystemMessage(m.Content)
	case llm.RoleAssistant:
		return schema.AssistantMessage(m.Content, nil)
	default:
		return schema.UserMessage(m.Content)
	}
}

var _ llm.Completer = (*Client)(nil)

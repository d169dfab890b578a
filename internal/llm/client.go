// Package llm wraps the chat-completion API used to generate weather queries and scenes.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/weatherrecap/weatherrecap/internal/logger"
)

// Completer turns a system and user message into a single text completion.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

var ErrEmptyCompletion = errors.New("no choices in completion response")

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	MinInterval time.Duration
}

// Client is a Completer backed by the OpenAI chat completions endpoint.
type Client struct {
	client   openai.Client
	model    string
	throttle *Throttle
}

func NewClient(cfg Config) *Client {
	throttle := NewThrottle(cfg.MinInterval)

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Each call is user-triggered; a failed call surfaces as an error instead of a retry.
		option.WithMaxRetries(0),
		option.WithMiddleware(throttle.Middleware),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Client{
		client:   openai.NewClient(opts...),
		model:    cfg.Model,
		throttle: throttle,
	}
}

func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	log := logger.FromContext(ctx).WithComponent("llm")
	start := time.Now()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		log.Error("Chat completion failed", "model", c.model, "duration", time.Since(start), "error", err)
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	log.Debug("Chat completion finished", "model", c.model, "duration", time.Since(start),
		"prompt_tokens", resp.Usage.PromptTokens, "completion_tokens", resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, nil
}

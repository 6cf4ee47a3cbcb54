package llm

import (
	"context"

	"github.com/checkmarkdevtools/system-notes/internal/config"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompletionService defines the interface for making chat completion API
// calls. This abstraction enables testing without calling the real API.
type CompletionService interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// NewCompletionService builds a CompletionService backed by the configured
// OpenAI-compatible endpoint.
func NewCompletionService(cfg config.LLMConfig) CompletionService {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	client := openai.NewClient(opts...)
	return client.Chat.Completions
}

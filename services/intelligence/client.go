// File: services/intelligence/client.go
package ai

import (
	"context"
	"fmt"

	"remindly/config"
)

// Client is the minimal chat-completion surface the reminder flow needs:
// one system prompt, one user prompt, one text reply.
type Client interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// NewClient builds the provider selected by AI_PROVIDER.
func NewClient(cfg config.Config) (Client, error) {
	switch cfg.AIProvider {
	case "together":
		return NewTogetherClient(cfg.TogetherAPIKey, cfg.AIModel, cfg.TogetherBaseURL), nil
	case "gemini":
		return NewGeminiClient(cfg.GeminiAPIKey, cfg.AIModel)
	case "deepseek":
		return NewDeepseekClient(cfg.DeepseekAPIKey, cfg.AIModel)
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.AIProvider)
	}
}

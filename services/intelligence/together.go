// File: services/intelligence/together.go
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultTogetherModel = "deepseek-ai/DeepSeek-V3"

// TogetherClient talks to Together's OpenAI-compatible chat endpoint, so it
// rides on the OpenAI SDK pointed at the Together base URL.
type TogetherClient struct {
	client openai.Client
	model  string
}

func NewTogetherClient(apiKey, model, baseURL string) *TogetherClient {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	if model == "" {
		model = defaultTogetherModel
	}
	return &TogetherClient{client: client, model: model}
}

func (c *TogetherClient) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("together chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("together chat: no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

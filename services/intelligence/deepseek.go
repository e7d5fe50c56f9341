// File: services/intelligence/deepseek.go
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-deepseek/deepseek"
	"github.com/go-deepseek/deepseek/request"
)

const defaultDeepseekModel = "deepseek-chat"

// DeepseekClient goes straight to the DeepSeek API instead of routing the
// same model family through Together.
type DeepseekClient struct {
	client deepseek.Client
	model  string
}

func NewDeepseekClient(apiKey, model string) (*DeepseekClient, error) {
	client, err := deepseek.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create DeepSeek client: %w", err)
	}

	if model == "" {
		model = defaultDeepseekModel
	}
	return &DeepseekClient{client: client, model: model}, nil
}

func (d *DeepseekClient) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := d.client.CallChatCompletionsChat(ctx, &request.ChatCompletionsRequest{
		Model: d.model,
		Messages: []*request.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("deepseek chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("deepseek chat: no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIAdvisorClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIAdvisorClient(apiKey, model string) AdvisorClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAdvisorClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIAdvisorClient) GenerateAdvice(ctx context.Context, systemInstruction string, query string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: 500,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content")
	}
	return resp.Choices[0].Message.Content, nil
}

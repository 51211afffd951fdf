package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAdvisorClient implements AdvisorClientInterface using Google's Gemini
// models.
type GeminiAdvisorClient struct {
	client *genai.Client
	model  string
}

func NewGeminiAdvisorClient(apiKey, model string) (AdvisorClientInterface, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAdvisorClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiAdvisorClient) GenerateAdvice(ctx context.Context, systemInstruction string, query string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetMaxOutputTokens(500)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(query))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

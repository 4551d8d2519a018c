package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// TextGenerator is the outbound model call. Production uses Gemini; tests
// substitute a canned double.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, systemInstruction, userMessage string) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(apiKey string) (TextGenerator, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: "gemini-2.5-flash",
	}, nil
}

// GenerateJSON implements TextGenerator. The response is constrained to a
// single JSON object and the temperature is fixed low to bias toward
// schema-faithful output. One attempt, no retry.
func (g *geminiService) GenerateJSON(ctx context.Context, systemInstruction, userMessage string) (string, error) {
	temperature := float32(0.2)

	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  4096,
		ResponseMIMEType: "application/json",
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(systemInstruction)},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(userMessage), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

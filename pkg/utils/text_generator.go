package utils

import (
	"context"
	"fmt"
	"strings"
)

// TextGeneratorInterface produces prose from a prompt.
type TextGeneratorInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewTextGenerator Factory function to create either OpenAI or Gemini client based on config
func NewTextGenerator(ctx context.Context, provider, apiKey, model string) (TextGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextClient(apiKey, model), nil
	case "gemini", "":
		client, err := NewGeminiTextClient(ctx, apiKey, model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

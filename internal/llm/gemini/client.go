package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"resumind-backend/internal/llm"
)

// Client implements llm.Client using the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a new Gemini client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Chat sends a single user prompt and returns the reply envelope.
// Failed calls are not retried.
func (c *Client) Chat(ctx context.Context, prompt string) (*llm.Response, error) {
	temperature := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 500,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return nil, mapError(err)
	}
	if resp == nil {
		return nil, llm.ErrNoResponse
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, llm.ErrNoResponse
	}

	return &llm.Response{
		Message: llm.ResponseMessage{
			Role:    "assistant",
			Content: llm.TextContent(text),
		},
	}, nil
}

func mapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &llm.ProviderError{
			Code:    apiErr.Status,
			Status:  apiErr.Code,
			Message: llm.StatusMessage(apiErr.Code),
		}
	}
	return err
}

var _ llm.Client = (*Client)(nil)

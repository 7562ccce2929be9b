package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jharland/commit-pilot/internal/observability"
)

const (
	// modelID is the fixed model used for every generation.
	modelID = "gpt-4o-mini"
	// maxOutputTokens caps the generated message length.
	maxOutputTokens = 300
)

// Client implements ports.Generator against the OpenAI API.
type Client struct {
	apiKey string
}

// NewClient creates a new OpenAI-backed generator.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &Client{apiKey: apiKey}, nil
}

// Generate sends the prompt as a single user-role message and returns the
// first returned text segment. Auth, network, and quota failures all
// surface as one wrapped error; the caller does not inspect sub-kinds.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(c.apiKey)

	req := openai.ChatCompletionRequest{
		Model:     modelID,
		MaxTokens: maxOutputTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		observability.Logger().Printf("openai: empty choices for model %s", modelID)
		return "", fmt.Errorf("no choices returned from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

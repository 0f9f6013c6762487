// Package advice wraps the Gemini text-completion service behind the
// narrow contract the clinic screens use: lifestyle advice for a visit and
// clinical-note summaries. The service is an opaque collaborator; callers
// get plain text or the documented fallback string.
package advice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is used when no model id is configured.
const DefaultModel = "gemini-2.5-flash"

// TextGenerator produces free text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient implements TextGenerator using Google's Gemini API.
type GeminiClient struct {
	client  *genai.Client
	modelID string
}

// NewGeminiClient creates a Gemini-backed generator.
func NewGeminiClient(ctx context.Context, apiKey, modelID string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("advice: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("advice: create gemini client: %w", err)
	}
	return &GeminiClient{client: client, modelID: modelID}, nil
}

// Generate sends a single-turn prompt and returns the first text part.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.modelID)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("advice: generate content: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", errors.New("advice: empty response")
	}
	return out, nil
}

// Model returns the configured model id.
func (c *GeminiClient) Model() string { return c.modelID }

// Close releases the underlying client.
func (c *GeminiClient) Close() error { return c.client.Close() }

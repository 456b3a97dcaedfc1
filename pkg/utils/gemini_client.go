package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiAdventureClient implements AdventureClientInterface against
// Google's Gemini models.
type GeminiAdventureClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiAdventureClient(apiKey, model string, timeout time.Duration) (*GeminiAdventureClient, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAdventureClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *GeminiAdventureClient) GenerateAdventures(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.8)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(AdventureSystemPrompt)},
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := model.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", classifyGeminiError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	content := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

func classifyGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case http.StatusPaymentRequired:
			return fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

func (c *GeminiAdventureClient) Close() error {
	return c.client.Close()
}

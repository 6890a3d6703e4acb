// Package llm provides a small chat-completion client for the advisory
// chatbot. It speaks the OpenRouter chat completions API.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/kisanmitra/kisan-service/config"
)

// ErrNotConfigured is returned when no API key is set. Callers fall back to
// simulated answers.
var ErrNotConfigured = errors.New("llm: no API key configured")

// Client produces a completion for a prompt.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// OpenRouterClient talks to the OpenRouter chat completions endpoint.
type OpenRouterClient struct {
	http   *resty.Client
	apiKey string
	model  string
}

// NewOpenRouterClient creates a client from LLM configuration.
func NewOpenRouterClient(cfg config.LLMConfig) *OpenRouterClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)
	return &OpenRouterClient{http: client, apiKey: cfg.APIKey, model: cfg.Model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends a system plus user message and returns the first choice.
func (c *OpenRouterClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	var result chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: system},
				{Role: "user", Content: prompt},
			},
		}).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("llm: upstream returned status %d", resp.StatusCode())
	}
	if result.Error != nil {
		return "", fmt.Errorf("llm: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("llm: empty completion")
	}
	return result.Choices[0].Message.Content, nil
}

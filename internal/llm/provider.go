package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider is the text-generation backend used for metadata extraction and
// document overviews.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}

// NewProvider builds a provider from its configured name.
func NewProvider(name, model string) (Provider, error) {
	switch name {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for the openai provider")
		}
		return NewOpenAIProvider(apiKey, model), nil
	case "ollama":
		return NewOllamaProvider("", model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q (supported: openai, ollama)", name)
	}
}

// CompleteWithRetry calls the provider with exponential backoff on rate
// limit and overload errors. Other errors return immediately.
func CompleteWithRetry(ctx context.Context, p Provider, req CompletionRequest) (*CompletionResponse, error) {
	const maxRetries = 5
	backoff := 10 * time.Second

	for attempt := 0; ; attempt++ {
		resp, err := p.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}

		msg := err.Error()
		retryable := strings.Contains(msg, "rate_limit") ||
			strings.Contains(msg, "429") ||
			strings.Contains(msg, "too many requests") ||
			strings.Contains(msg, "overloaded")
		if !retryable {
			return nil, err
		}
		if attempt == maxRetries {
			return nil, fmt.Errorf("rate limited after %d retries: %w", maxRetries, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
			if backoff > 2*time.Minute {
				backoff = 2 * time.Minute
			}
		}
	}
}

// Generate is a convenience wrapper for single-prompt text generation.
func Generate(ctx context.Context, p Provider, model, prompt string, maxTokens int) (string, error) {
	resp, err := CompleteWithRetry(ctx, p, CompletionRequest{
		Model:       model,
		Messages:    []Message{{Role: RoleUser, Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

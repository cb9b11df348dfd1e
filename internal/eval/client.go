package eval

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// ErrUnknownProvider marks a provider name with no registered client.
var ErrUnknownProvider = errors.New("unknown provider")

// Client completes one prompt against a model endpoint.
type Client interface {
	// Complete sends prompt and returns the model's text response.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name identifies the provider and model for reporting.
	Name() string
}

// ClientConfig selects and configures a provider client.
type ClientConfig struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
}

// NewClient builds the client for a provider name: "ollama", "openai"
// or "hf".
func NewClient(cfg ClientConfig) (Client, error) {
	switch cfg.Provider {
	case "ollama":
		return newOllamaClient(cfg), nil
	case "openai":
		return newOpenAIClient(cfg), nil
	case "hf":
		return newHFClient(cfg), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
}

const (
	defaultRetries     = 3
	defaultBackoffBase = 500 * time.Millisecond
	maxBackoff         = 10 * time.Second
)

// completeWithRetry wraps a client call with exponential backoff.
// Backoff doubles per attempt, capped at maxBackoff, with up to 25%
// jitter. A canceled context stops retrying immediately.
func completeWithRetry(ctx context.Context, client Client, prompt string, retries int) (string, error) {
	if retries <= 0 {
		retries = defaultRetries
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			backoff := defaultBackoffBase << (attempt - 1)
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			backoff += time.Duration(rand.Int64N(int64(backoff) / 4))
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		response, err := client.Complete(ctx, prompt)
		if err == nil {
			return response, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("all %d attempts failed: %w", retries+1, lastErr)
}

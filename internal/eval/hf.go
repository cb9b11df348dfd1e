package eval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultHFTimeout = 60 * time.Second

type hfClient struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

func newHFClient(cfg ClientConfig) *hfClient {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co/models"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHFTimeout
	}
	return &hfClient{
		baseURL: baseURL,
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *hfClient) Name() string {
	return "hf/" + c.model
}

type hfRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

type hfResponse struct {
	GeneratedText string `json:"generated_text"`
}

func (c *hfClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload := hfRequest{
		Inputs: prompt,
		Parameters: map[string]any{
			"max_new_tokens":   16,
			"temperature":      0.1,
			"return_full_text": false,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+c.model, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call inference api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read inference response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		snippet := strings.TrimSpace(string(raw))
		if snippet == "" {
			snippet = resp.Status
		}
		return "", fmt.Errorf("inference request failed (%s): %s", resp.Status, snippet)
	}

	var decoded []hfResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decode inference response: %w", err)
	}
	if len(decoded) == 0 {
		return "", fmt.Errorf("inference response is empty")
	}
	return decoded[0].GeneratedText, nil
}

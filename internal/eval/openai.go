package eval

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

type openAIClient struct {
	client *openai.Client
	model  string
}

func newOpenAIClient(cfg ClientConfig) *openAIClient {
	opts := []option.RequestOption{}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	client := openai.NewClient(opts...)
	return &openAIClient{client: &client, model: cfg.Model}
}

func (c *openAIClient) Name() string {
	return "openai/" + c.model
}

func (c *openAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ResponsesModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(prompt),
		},
		MaxOutputTokens: openai.Int(16),
		Temperature:     openai.Float(0.1),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	return result.OutputText(), nil
}

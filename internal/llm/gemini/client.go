package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/Forgingalex/rei/internal/llm"
	"github.com/Forgingalex/rei/internal/models"
)

const DefaultModel = "gemini-2.0-flash"

// Client talks to the Gemini API through the Google GenAI SDK.
type Client struct {
	client *genai.Client
	logger *zerolog.Logger
}

func NewClient(ctx context.Context, apiKey string, logger *zerolog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client: genaiClient,
		logger: logger,
	}, nil
}

func (c *Client) Query(ctx context.Context, prompt string, model string) (*models.ProviderResponse, error) {
	if model == "" {
		model = DefaultModel
	}

	start := time.Now()

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke gemini model: %w", err)
	}

	var tokens int
	if result.UsageMetadata != nil {
		tokens = int(result.UsageMetadata.TotalTokenCount)
	}

	latency := time.Since(start)
	c.logger.Debug().
		Str("model", model).
		Dur("latency", latency).
		Msg("gemini query complete")

	return &models.ProviderResponse{
		Provider: llm.ProviderGemini,
		Model:    model,
		Response: result.Text(),
		Latency:  fmt.Sprintf("%.2fs", latency.Seconds()),
		Tokens:   tokens,
	}, nil
}

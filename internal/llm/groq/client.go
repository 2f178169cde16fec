package groq

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"

	"github.com/Forgingalex/rei/internal/llm"
	"github.com/Forgingalex/rei/internal/models"
)

const (
	baseURL = "https://api.groq.com/openai/v1"

	DefaultModel = "llama-3.3-70b-versatile"
)

// Client talks to Groq's LPU inference API, which speaks the OpenAI
// chat completions protocol.
type Client struct {
	client openai.Client
	logger *zerolog.Logger
}

func NewClient(apiKey string, logger *zerolog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("groq API key is required")
	}

	openaiClient := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(3),
	)

	return &Client{
		client: openaiClient,
		logger: logger,
	}, nil
}

func (c *Client) Query(ctx context.Context, prompt string, model string) (*models.ProviderResponse, error) {
	if model == "" {
		model = DefaultModel
	}

	start := time.Now()

	message := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(model),
	}

	output, err := c.client.Chat.Completions.New(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke groq model: %w", err)
	}

	if len(output.Choices) == 0 {
		return nil, fmt.Errorf("no choices in groq response")
	}

	latency := time.Since(start)
	c.logger.Debug().
		Str("model", model).
		Dur("latency", latency).
		Msg("groq query complete")

	return &models.ProviderResponse{
		Provider: llm.ProviderGroq,
		Model:    model,
		Response: output.Choices[0].Message.Content,
		Latency:  fmt.Sprintf("%.2fs", latency.Seconds()),
		Tokens:   int(output.Usage.TotalTokens),
	}, nil
}

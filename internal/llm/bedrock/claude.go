package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/Forgingalex/rei/internal/llm"
	"github.com/Forgingalex/rei/internal/models"
)

const (
	maxTokens   = 1024
	temperature = 0.7
)

var anthropicVersion = "bedrock-2023-05-31"

type claudeMessageRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeMessageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Query invokes a Claude model on Bedrock, retrying throttling and
// transient service errors with exponential backoff.
func (c *Client) Query(ctx context.Context, prompt string, model string) (*models.ProviderResponse, error) {
	if model == "" {
		model = DefaultModel
	}

	start := time.Now()

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		response, err := c.invoke(ctx, prompt, model)
		if err == nil {
			latency := time.Since(start)
			c.logger.Debug().
				Str("model", model).
				Dur("latency", latency).
				Msg("bedrock query complete")

			return &models.ProviderResponse{
				Provider: llm.ProviderBedrock,
				Model:    model,
				Response: response.text,
				Latency:  fmt.Sprintf("%.2fs", latency.Seconds()),
				Tokens:   response.tokens,
			}, nil
		}

		lastErr = err
		if !isRetryableError(err) {
			return nil, fmt.Errorf("non-retryable error: %w", err)
		}

		delay := calculateBackoff(attempt, c.initialDelay, c.maxDelay)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
			continue
		}
	}

	return nil, fmt.Errorf("max retries %d exceeded: %w", c.maxRetries, lastErr)
}

type claudeResult struct {
	text   string
	tokens int
}

func (c *Client) invoke(ctx context.Context, prompt string, model string) (*claudeResult, error) {
	payload := claudeMessageRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		Temperature:      temperature,
		Messages: []claudeMessage{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize claude request: %w", err)
	}

	output, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &model,
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to invoke claude model: %w", err)
	}

	var response claudeMessageResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bedrock response: %w", err)
	}

	var text string
	if len(response.Content) > 0 {
		text = response.Content[0].Text
	}

	return &claudeResult{
		text:   text,
		tokens: response.Usage.InputTokens + response.Usage.OutputTokens,
	}, nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// 1. Throttling errors
	if strings.Contains(errStr, "ThrottlingException") ||
		strings.Contains(errStr, "TooManyRequestsException") ||
		strings.Contains(errStr, "Rate exceeded") {
		return true
	}

	// 2. Service errors (5xx)
	if strings.Contains(errStr, "InternalServerException") ||
		strings.Contains(errStr, "ServiceUnavailableException") ||
		strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "503") {
		return true
	}

	// 3. Network errors
	if strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "EOF") ||
		strings.Contains(errStr, "timeout") {
		return true
	}

	// Non-retryable errors (4xx client errors, validation errors, etc.)
	return false
}

func calculateBackoff(attempt int, initialDelay, maxDelay time.Duration) time.Duration {
	backoff := float64(initialDelay) * math.Pow(2, float64(attempt))

	if backoff > float64(maxDelay) {
		backoff = float64(maxDelay)
	}

	jitter := backoff * 0.2 * (2*rand.Float64() - 1) // Random value between -20% and +20%
	backoff += jitter

	return time.Duration(backoff)
}

package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Forgingalex/rei/internal/llm"
	"github.com/Forgingalex/rei/internal/models"
)

const (
	defaultEndpoint = "http://localhost:11434"

	DefaultModel = "qwen2.5:0.5b"
)

// Client talks to a local Ollama server. No API key needed, data never
// leaves the machine.
type Client struct {
	endpoint string
	client   *http.Client
	logger   *zerolog.Logger
}

func NewClient(endpoint string, logger *zerolog.Logger) (*Client, error) {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			// Outlives the dispatcher's round budget so a slow local
			// model still gets bounded instead of leaking a goroutine.
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}, nil
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response  string `json:"response"`
	EvalCount int    `json:"eval_count"`
}

func (c *Client) Query(ctx context.Context, prompt string, model string) (*models.ProviderResponse, error) {
	if model == "" {
		model = DefaultModel
	}

	start := time.Now()

	body, err := json.Marshal(generateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ollama request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode ollama response: %w", err)
	}

	latency := time.Since(start)
	c.logger.Debug().
		Str("model", model).
		Dur("latency", latency).
		Int("tokens", result.EvalCount).
		Msg("ollama query complete")

	return &models.ProviderResponse{
		Provider: llm.ProviderLocal,
		Model:    model,
		Response: result.Response,
		Latency:  fmt.Sprintf("%.2fs", latency.Seconds()),
		Tokens:   result.EvalCount,
	}, nil
}

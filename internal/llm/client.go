package llm

import (
	"context"
	"errors"

	"github.com/Forgingalex/rei/internal/models"
)

// Provider ids accepted in council configuration.
const (
	ProviderGroq    = "groq"
	ProviderGemini  = "gemini"
	ProviderLocal   = "local"
	ProviderBedrock = "bedrock"
)

var ErrUnknownProvider = errors.New("unknown provider")

// Client is one model backend. Implementations fill latency and token
// accounting on success; failures surface as errors for the dispatcher
// to convert, never as partial responses.
// This allows mocking in tests without making real API calls.
type Client interface {
	Query(ctx context.Context, prompt string, model string) (*models.ProviderResponse, error)
}

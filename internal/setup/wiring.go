package setup

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Forgingalex/rei/internal/auditor"
	"github.com/Forgingalex/rei/internal/config"
	"github.com/Forgingalex/rei/internal/council"
	"github.com/Forgingalex/rei/internal/llm"
	"github.com/Forgingalex/rei/internal/llm/bedrock"
	"github.com/Forgingalex/rei/internal/llm/gemini"
	"github.com/Forgingalex/rei/internal/llm/groq"
	"github.com/Forgingalex/rei/internal/llm/ollama"
	"github.com/Forgingalex/rei/internal/memory"
	"github.com/Forgingalex/rei/internal/models"
)

type Config struct {
	GroqAPIKey     string
	GeminiAPIKey   string
	OllamaEndpoint string
	AWSRegion      string
	LogLevel       string
}

type Dependencies struct {
	Council *council.Council
	Members []council.Member
	Store   memory.Store
	Auditor *auditor.Auditor
	Logger  *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		GroqAPIKey:     getEnv("GROQ_API_KEY", ""),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		OllamaEndpoint: getEnv("OLLAMA_ENDPOINT", "http://localhost:11434"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// Wire builds the full deliberation stack from the council YAML config
// plus provider credentials from the environment. onResponse may be nil;
// interactive surfaces pass a printer to stream per-member progress.
func Wire(ctx context.Context, cfg *Config, onResponse func(models.ProviderResponse), logger *zerolog.Logger) (*Dependencies, error) {
	councilCfg, err := config.LoadCouncilConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load council config: %w", err)
	}

	store, err := memory.NewStore(councilCfg.Memory.Kind, councilCfg.Memory.Endpoint, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create boundary store: %w", err)
	}

	members := make([]council.Member, 0, len(councilCfg.Council.Members))
	for _, m := range councilCfg.Council.Members {
		client, err := NewLLMClient(ctx, m.Provider, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create client for member %q: %w", m.Name, err)
		}
		members = append(members, council.Member{
			Name:     m.Name,
			Provider: m.Provider,
			Model:    m.Model,
			Client:   client,
		})
	}

	timeout := time.Duration(councilCfg.Council.TimeoutSeconds) * time.Second
	dispatcher := council.NewDispatcher(members, timeout, onResponse, logger)
	synthesizer := council.NewSynthesizer(councilCfg.Council.Primary, logger)
	aud := auditor.New(logger, councilCfg.Auditor.StrictMode)

	return &Dependencies{
		Council: council.NewCouncil(dispatcher, synthesizer, aud, store, logger),
		Members: members,
		Store:   store,
		Auditor: aud,
		Logger:  logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

// NewLLMClient builds a provider client from its config id. Council
// wiring and the benchmark judge both go through here.
func NewLLMClient(ctx context.Context, provider string, cfg *Config, logger *zerolog.Logger) (llm.Client, error) {
	switch provider {
	case llm.ProviderGroq:
		return groq.NewClient(cfg.GroqAPIKey, logger)
	case llm.ProviderGemini:
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, logger)
	case llm.ProviderLocal:
		return ollama.NewClient(cfg.OllamaEndpoint, logger)
	case llm.ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion, logger)
	default:
		return nil, fmt.Errorf("%w: %q", llm.ErrUnknownProvider, provider)
	}
}

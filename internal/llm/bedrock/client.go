package bedrock

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/rs/zerolog"
)

const DefaultModel = "anthropic.claude-3-haiku-20240307-v1:0"

type Client struct {
	client       *bedrockruntime.Client
	maxRetries   int
	initialDelay time.Duration
	maxDelay     time.Duration
	logger       *zerolog.Logger
}

func NewClient(ctx context.Context, region string, logger *zerolog.Logger) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}

	return &Client{
		client:       bedrockruntime.NewFromConfig(cfg),
		maxRetries:   3,
		initialDelay: 100 * time.Millisecond,
		maxDelay:     12 * time.Second,
		logger:       logger,
	}, nil
}

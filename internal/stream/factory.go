package stream

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Forgingalex/rei/internal/stream/redis"
)

type StreamConfig struct {
	Provider    string // redis, kafka, sqs, etc
	RedisConfig *redis.RedisStreamConfig
}

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	deliberator redis.Deliberator,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := redis.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			5,
		)
		if err != nil {
			return nil, err
		}

		var results *redis.Producer
		if cfg.RedisConfig.ResultsStream != "" {
			results = redis.NewProducer(client, cfg.RedisConfig.ResultsStream, logger)
		}

		return redis.NewConsumer(
			client,
			cfg.RedisConfig.Stream,
			cfg.RedisConfig.Group,
			cfg.RedisConfig.ConsumerName,
			deliberator,
			results,
			logger,
		), nil

	// Future providers:
	// case "kafka":
	//     return kafka.NewConsumer(...)

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}

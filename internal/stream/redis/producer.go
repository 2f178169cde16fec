package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Producer publishes JSON payloads onto a Redis stream, one message
// per payload under a single "payload" field.
type Producer struct {
	client *redis.Client
	stream string
	logger *zerolog.Logger
}

func NewProducer(client *redis.Client, stream string, logger *zerolog.Logger) *Producer {
	return &Producer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *Producer) Publish(ctx context.Context, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{"payload": string(data)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to publish to %s: %w", p.stream, err)
	}

	p.logger.Debug().Str("stream", p.stream).Str("id", id).Msg("Message published")
	return id, nil
}

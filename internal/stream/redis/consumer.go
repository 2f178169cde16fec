package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Forgingalex/rei/internal/models"
)

// Deliberator runs one prompt through the deliberation pipeline.
type Deliberator interface {
	Deliberate(ctx context.Context, prompt string) (*models.DeliberationVerdict, error)
}

type Consumer struct {
	client       *redis.Client
	stream       string
	groupID      string
	consumerName string
	deliberator  Deliberator
	results      *Producer
	logger       *zerolog.Logger
}

// NewConsumer reads deliberation requests from stream and, when results
// is non-nil, publishes each verdict onto the results stream.
func NewConsumer(client *redis.Client, stream string, groupID string, consumerName string, deliberator Deliberator, results *Producer, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		stream:       stream,
		groupID:      groupID,
		consumerName: consumerName,
		deliberator:  deliberator,
		results:      results,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, msg := range msgs[0].Messages {
			c.process(ctx, msg)
		}
	}
}

func (c *Consumer) Stop() error {
	// No-op
	return nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values["payload"].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var request models.DeliberationRequest
	if err := json.Unmarshal([]byte(payload), &request); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}

	if strings.TrimSpace(request.Prompt) == "" {
		c.logger.Error().Str("id", msg.ID).Msg("Empty prompt in request")
		c.ack(ctx, msg.ID)
		return
	}
	if request.RequestID == "" {
		request.RequestID = uuid.NewString()
	}

	verdict, err := c.deliberator.Deliberate(ctx, request.Prompt)
	if err != nil {
		c.logger.Error().Err(err).Str("request_id", request.RequestID).Msg("Deliberation failed")
		c.ack(ctx, msg.ID)
		return
	}

	c.logger.Info().
		Str("request_id", request.RequestID).
		Str("verdict", string(verdict.Audit.Verdict)).
		Int("trust_score", verdict.TrustScore).
		Msg("Deliberation complete")

	if c.results != nil {
		result := models.DeliberationResult{
			RequestID:   request.RequestID,
			Verdict:     *verdict,
			CompletedAt: time.Now(),
		}
		if _, err := c.results.Publish(ctx, result); err != nil {
			c.logger.Error().Err(err).Str("request_id", request.RequestID).Msg("Failed to publish result")
		}
	}

	c.ack(ctx, msg.ID)
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Forgingalex/rei/internal/setup"
	"github.com/Forgingalex/rei/internal/setup/logger"
	"github.com/Forgingalex/rei/internal/stream"
	"github.com/Forgingalex/rei/internal/stream/redis"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()

	// Headless worker: JSON logs at the configured level, meant for
	// collection rather than a terminal.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Wire the deliberation stack
	deps, err := setup.Wire(ctx, cfg, nil, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire deliberation stack")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	streamCfg := &stream.StreamConfig{
		Provider: os.Getenv("STREAM_PROVIDER"),
		RedisConfig: redis.NewRedisStreamConfig(
			redisAddr,
			os.Getenv("REDIS_PASSWORD"),
			"deliberations",
			"council-group",
			os.Getenv("HOSTNAME"),
			"verdicts",
		),
	}

	consumer, err := stream.NewStreamConsumer(ctx, streamCfg, deps.Council, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}

	// Setup consumer
	err = consumer.Setup(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to setup consumer")
	}

	// Start consumer
	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("Consumer stopped with error")
		}
	}()

	// Wait for context to be done
	<-ctx.Done()
	log.Info().Msg("Shutting down...")

	log.Info().Msg("Deliberation consumer stopped")
}

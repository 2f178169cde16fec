package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Forgingalex/rei/internal/models"
	"github.com/Forgingalex/rei/internal/stream/redis"
)

func main() {
	data := flag.String("d", "", "Inline JSON DeliberationRequest")
	stream := flag.String("stream", "deliberations", "Stream name")
	flag.Parse()

	if *data == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>'")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	if err := run(*data, *stream, &logger); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(data, stream string, logger *zerolog.Logger) error {
	_ = godotenv.Load()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()
	client, err := redis.ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 3)
	if err != nil {
		return err
	}
	defer client.Close()

	var req models.DeliberationRequest
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		return err
	}

	id, err := redis.NewProducer(client, stream, logger).Publish(ctx, req)
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", id).Str("request_id", req.RequestID).Msg("Published successfully!")
	return nil
}

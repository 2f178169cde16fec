package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Forgingalex/rei/internal/bench"
	"github.com/Forgingalex/rei/internal/setup"
)

func main() {
	startTime := time.Now()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	input := flag.String("input", "", "Scenario JSONL file ('-' for stdin, empty for the built-in pressure suite)")
	output := flag.String("output", "logs", "Directory for benchmark exports")
	workers := flag.Int("workers", 2, "Concurrent benchmark workers")
	judge := flag.String("judge", "gemini", "Provider used to audit responses")
	judgeModel := flag.String("judge-model", "gemini-2.0-flash", "Model used by the judge provider")
	dryRun := flag.Bool("dry-run", false, "Validate input without running the council")

	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	ctx, cancel := setupGracefulShutdown()
	defer cancel()

	cfg := setup.LoadConfig()

	deps, err := setup.Wire(ctx, cfg, nil, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	scenarios := loadScenarios(ctx, *input, deps, *dryRun)

	log.Info().
		Int("scenarios", len(scenarios)).
		Int("members", len(deps.Members)).
		Str("judge", *judge).
		Msg("Benchmark starting")

	judgeClient, err := setup.NewLLMClient(ctx, *judge, cfg, deps.Logger)
	if err != nil {
		log.Fatal().Err(err).Str("judge", *judge).Msg("Failed to create judge client")
	}

	runner := bench.NewRunner(deps.Members, judgeClient, *judgeModel, deps.Auditor, *workers, deps.Logger)

	var results []bench.Result
	for result := range runner.Run(ctx, scenarios) {
		log.Info().
			Str("scenario", result.ScenarioID).
			Str("provider", result.Provider).
			Str("score", result.Score).
			Int("pattern_score", result.PatternScore).
			Msg("Scenario graded")
		results = append(results, result)
	}

	jsonPath, csvPath, err := bench.SaveResults(*output, results)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to save results")
	}

	log.Info().
		Int("results", len(results)).
		Str("json", jsonPath).
		Str("csv", csvPath).
		Dur("duration", time.Since(startTime)).
		Msg("Benchmark complete")
}

// loadScenarios reads the JSONL input when one is given, otherwise the
// built-in pressure suite. Dry-run mode exits after validation.
func loadScenarios(ctx context.Context, input string, deps *setup.Dependencies, dryRun bool) []bench.Scenario {
	if input == "" {
		scenarios := bench.PressureScenarios()
		if dryRun {
			log.Info().Int("scenarios", len(scenarios)).Msg("Validation successful")
			os.Exit(0)
		}
		return scenarios
	}

	var inputFile io.Reader
	if input == "-" {
		inputFile = os.Stdin
		log.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(input)
		if err != nil {
			log.Fatal().Err(err).Str("file", input).Msg("Failed to open input file")
		}
		defer f.Close()
		inputFile = f
		log.Info().Str("file", input).Msg("Reading input file")
	}

	reader := bench.NewReader(inputFile, deps.Logger)

	var scenarios []bench.Scenario
	errorCount := 0
	for record := range reader.ReadAll(ctx) {
		if record.Error != nil {
			log.Error().
				Int("line", record.LineNumber).
				Err(record.Error).
				Msg("Validation error")
			errorCount++
			continue
		}
		scenarios = append(scenarios, record.Scenario)
	}

	if errorCount > 0 {
		log.Fatal().Int("errors", errorCount).Msg("Validation failed")
	}
	if len(scenarios) == 0 {
		log.Fatal().Msg("No scenarios in input")
	}

	if dryRun {
		log.Info().Int("scenarios", len(scenarios)).Msg("Validation successful")
		os.Exit(0)
	}

	return scenarios
}

func setupGracefulShutdown() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Warn().Msg("Received interrupt signal, finishing current work...")
		cancel()
	}()

	return ctx, cancel
}

package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Forgingalex/rei/internal/mcpadapter"
	"github.com/Forgingalex/rei/internal/setup"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	// Load env
	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load Config
	cfg := setup.LoadConfig()

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, nil, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	// Create MCP Server
	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes (e.g. echo | ./bin/rei-mcp)
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "rei",
			Version: "1.0.0",
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "deliberate",
		Description: "Run a prompt through the full deliberation pipeline: boundary check, council dispatch, synthesis, and coercion audit",
	}, mcpadapter.NewDeliberateHandler(deps.Council))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "audit_response",
		Description: "Score a single response for soft coercion patterns without running the council. Faster than full deliberation.",
	}, mcpadapter.NewAuditHandler(deps.Auditor))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_boundary",
		Description: "Record a user boundary so future deliberations reword prompts that trespass on it",
	}, mcpadapter.NewAddBoundaryHandler(deps.Store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_boundaries",
		Description: "List all recorded user boundaries",
	}, mcpadapter.NewListBoundariesHandler(deps.Store))

	return server
}

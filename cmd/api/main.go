package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Forgingalex/rei/internal/api"
	"github.com/Forgingalex/rei/internal/api/middleware"
	"github.com/Forgingalex/rei/internal/setup"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Rei Deliberation API",
			Description: "Multi-model deliberation council with coercion auditing",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "deliberate", Description: "Full deliberation pipeline"}},
		{TagProps: spec.TagProps{Name: "audit", Description: "Standalone coercion audits"}},
		{TagProps: spec.TagProps{Name: "boundaries", Description: "Boundary memory management"}},
	}
}

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx := context.Background()

	deps, err := setup.Wire(ctx, setup.LoadConfig(), nil, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire deliberation stack")
	}

	// API
	handler := api.NewHandler(deps.Council, deps.Auditor, deps.Store, &logger)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/api/v1/openapi.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	// Server
	port := os.Getenv("REI_API_PORT")
	if port == "" {
		port = "18080"
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("address", addr).Msg("Starting Rei Deliberation API")

	// Deliberation holds the response open for up to two council rounds,
	// so the write timeout must cover both plus synthesis.
	server := http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(container),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

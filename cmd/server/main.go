package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"taxwise/internal/config"
	"taxwise/internal/extract"
	"taxwise/internal/handler"
	"taxwise/internal/ingest"
	"taxwise/internal/llm"
	"taxwise/internal/llm/groq"
	"taxwise/internal/llm/openai"
	"taxwise/internal/port"
	"taxwise/internal/router"
	"taxwise/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Register completion providers
	llm.RegisterProvider("groq", func(c *config.CompleterConfig) (port.Completer, error) {
		return groq.NewClient(c), nil
	})
	llm.RegisterProvider("openai", func(c *config.CompleterConfig) (port.Completer, error) {
		return openai.NewClient(c), nil
	})

	completer, err := llm.NewCompleter(&cfg.Completer)
	if err != nil {
		return fmt.Errorf("failed to initialize completer: %w", err)
	}
	if !completer.Available() {
		log.Printf("no %s API key configured; documents will use heuristic analysis", cfg.Completer.Provider)
	}

	// Initialize pipeline
	ingestor := ingest.NewIngestor(completer)
	analyzer := extract.NewAnalyzer(cfg.Ingest.AnnualizeMonths)
	ingestionSvc := service.NewIngestionService(completer, ingestor, analyzer)

	// Initialize handlers
	ingestionH := handler.NewIngestionHandler(ingestionSvc, cfg.Ingest.MaxFileSizeMB)
	healthH := handler.NewHealthHandler(completer)

	// Setup router
	r := router.Setup(cfg, ingestionH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

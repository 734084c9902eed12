package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clinalyze/medreport-api/analysis"
	"github.com/clinalyze/medreport-api/config"
	"github.com/clinalyze/medreport-api/exporter"
	"github.com/clinalyze/medreport-api/handlers"
	"github.com/clinalyze/medreport-api/interfaces"
	"github.com/clinalyze/medreport-api/logging"
	"github.com/clinalyze/medreport-api/reportparser"
	"github.com/clinalyze/medreport-api/scheduler"
	"github.com/clinalyze/medreport-api/server"
	"github.com/clinalyze/medreport-api/validation"
	"github.com/joho/godotenv"
)

// Compile-time check that the analysis service satisfies the Analyzer
// contract the handlers depend on.
var _ interfaces.Analyzer = (*analysis.Service)(nil)

func main() {
	// .env is optional: production config comes from real env vars
	if err := godotenv.Load(); err != nil {
		logging.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogDir, cfg.LogLevel, cfg.MaxLogFileSize)

	// Analysis pipeline wiring
	client := analysis.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	analyzer := analysis.NewService(client)
	parser := reportparser.NewParser()
	validator := validation.NewDataValidator()

	store, err := exporter.NewFileExporter(cfg.ExportDir, cfg.ExportRetentionDays)
	if err != nil {
		logging.Error("Failed to initialize exporter", "error", err)
		os.Exit(1)
	}

	sched := scheduler.NewScheduler(store)
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	handler := handlers.NewHTTPHandler(analyzer, parser, validator, store)
	srv := server.NewServer(cfg, handler)

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error", "error", err)
	}
}

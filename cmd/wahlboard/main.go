package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wahlboard/internal/backend"
	"wahlboard/internal/cli"
	"wahlboard/internal/dataset"
	apphttp "wahlboard/internal/http"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b, err := backend.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize results backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if b.Cleanup != nil {
		defer b.Cleanup()
	}

	// Load the dataset once; it stays immutable for the process
	// lifetime. An unavailable source degrades to the empty dataset
	// and the UI shows the error notice instead of crashing.
	records, err := b.Reader.LoadResults(ctx)
	if err != nil {
		logger.Warn("Results unavailable, serving empty dataset", "error", err, "backend", cfg.DataBackend)
		records = nil
	}
	ds := dataset.New(records)
	logger.Info("Dataset loaded", "rows", ds.Len(), "states", len(ds.States()), "backend", cfg.DataBackend)

	srv := apphttp.NewServer(":"+cfg.Port, ds)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting wahlboard server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

// Command export-worker consumes dataset sync messages and publishes
// national vote tallies to the shared Google spreadsheet. A periodic
// re-export covers messages missed while the worker was down.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wahlboard/internal/amqp"
	"wahlboard/internal/cli"
	gsheet "wahlboard/internal/sheets/google"
	"wahlboard/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	logger.Info("Starting export-worker")

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheetsClient, err := gsheet.NewFromEnv(ctx)
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", "error", err)
		os.Exit(1)
	}
	logger.Info("Google Sheets client initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	exportWorker := worker.NewExportWorker(repo, sheetsClient)

	// On startup, export whatever is already stored so a restart never
	// leaves the spreadsheet stale.
	if err := exportWorker.ExportNow(ctx); err != nil {
		logger.Error("Startup export failed", "error", err)
		// Don't exit - continue with normal operation
	}

	go func() {
		if err := amqpClient.ConsumeWithRetry(ctx, exportWorker.HandleSyncMessage); err != nil {
			if err != context.Canceled {
				logger.Error("Message consumption failed", "error", err)
			}
			cancel()
		}
	}()

	// Periodic re-export as a fallback for missed messages.
	ticker := time.NewTicker(cfg.ExportInterval)
	defer ticker.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			if err := exportWorker.ExportNow(ctx); err != nil {
				logger.Error("Periodic export failed", "error", err)
			}
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
			logger.Info("Export worker stopped gracefully")
			return
		case <-ctx.Done():
			logger.Info("Export worker stopped", "reason", ctx.Err())
			return
		}
	}
}

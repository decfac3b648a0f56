// Command wahlboard-import loads a results CSV into the SQLite store
// and announces the fresh dataset over AMQP so the export worker can
// sync the shared spreadsheet.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"wahlboard/internal/amqp"
	"wahlboard/internal/cli"
	"wahlboard/internal/core"
	"wahlboard/internal/dataset"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	csvPath := cfg.CSVPath
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	ctx := context.Background()

	if err := repo.ClearResults(ctx); err != nil {
		logger.Error("Failed to clear previous import", "error", err)
		os.Exit(1)
	}

	// Pipeline: one goroutine streams CSV rows, the other writes them
	// in batches inside transactions.
	g, gctx := errgroup.WithContext(ctx)
	recCh := make(chan core.VoteRecord, 256)

	g.Go(func() error {
		defer close(recCh)
		return dataset.StreamCSV(gctx, csvPath, recCh)
	})

	var imported int
	g.Go(func() error {
		batch := make([]core.VoteRecord, 0, cfg.ImportBatchSize)
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			n, err := repo.InsertResults(gctx, batch)
			if err != nil {
				return err
			}
			imported += n
			batch = batch[:0]
			return nil
		}
		for rec := range recCh {
			batch = append(batch, rec)
			if len(batch) >= cfg.ImportBatchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return flush()
	})

	if err := g.Wait(); err != nil {
		logger.Error("Import failed", "error", err, "path", csvPath)
		os.Exit(1)
	}

	logger.Info("Import completed", "path", csvPath, "rows", imported, "db_path", cfg.SQLiteDBPath)

	// Announce the fresh dataset; the export worker picks this up.
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, skipping dataset sync notification", "error", err)
			return
		}
		defer client.Close()

		importID := fmt.Sprintf("import_%d", time.Now().Unix())
		if err := client.PublishDatasetSync(ctx, importID, imported); err != nil {
			logger.Error("Failed to publish dataset sync message", "error", err, "import_id", importID)
			os.Exit(1)
		}
	} else {
		logger.Info("AMQP disabled - export worker will not be notified")
	}
}

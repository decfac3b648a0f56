// Package backend selects the results source the dashboard loads from.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"wahlboard/internal/config"
	"wahlboard/internal/dataset"
	"wahlboard/internal/results"
	gsheet "wahlboard/internal/sheets/google"
	"wahlboard/internal/storage"
)

// Type identifies a results source.
type Type string

const (
	CSVBackend    Type = "csv"
	SQLiteBackend Type = "sqlite"
	SheetsBackend Type = "sheets"
)

// IsValid returns true if the backend type is valid.
func (t Type) IsValid() bool {
	switch t {
	case CSVBackend, SQLiteBackend, SheetsBackend:
		return true
	default:
		return false
	}
}

// Result holds the source and an optional cleanup for its resources.
type Result struct {
	Reader  results.Reader
	Cleanup func() error
}

// New builds the configured results source.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	t := Type(cfg.DataBackend)
	switch t {
	case CSVBackend:
		logger.Info("Initialized CSV backend", "path", cfg.CSVPath)
		return &Result{Reader: dataset.NewCSVSource(cfg.CSVPath)}, nil
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Reader: repo, Cleanup: repo.Close}, nil
	case SheetsBackend:
		cli, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets client: %w", err)
		}
		logger.Info("Initialized Google Sheets backend")
		return &Result{Reader: cli}, nil
	default:
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}
}

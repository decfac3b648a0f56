package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"wahlboard/internal/core"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ClearResults implements results.Writer
func (r *SQLiteRepository) ClearResults(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM results`); err != nil {
		return fmt.Errorf("clear results: %w", err)
	}
	return nil
}

// InsertResults implements results.Writer. The batch is written in a
// single transaction.
func (r *SQLiteRepository) InsertResults(ctx context.Context, records []core.VoteRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (state, party, vote_date, first_votes, second_votes)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return 0, fmt.Errorf("invalid record (state=%s, party=%s): %w", rec.State, rec.Party, err)
		}
		if _, err := stmt.ExecContext(ctx,
			rec.State, rec.Party, rec.Date.Format(dateLayout), rec.FirstVotes, rec.SecondVotes); err != nil {
			return 0, fmt.Errorf("insert result (state=%s, party=%s): %w", rec.State, rec.Party, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	slog.InfoContext(ctx, "Results batch saved to SQLite", "rows", len(records))
	return len(records), nil
}

// LoadResults implements results.Reader. Rows come back in insert order
// so downstream tie-breaking matches the imported file.
func (r *SQLiteRepository) LoadResults(ctx context.Context) ([]core.VoteRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT state, party, vote_date, first_votes, second_votes
		FROM results ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var records []core.VoteRecord
	for rows.Next() {
		var rec core.VoteRecord
		var dateStr string
		if err := rows.Scan(&rec.State, &rec.Party, &dateStr, &rec.FirstVotes, &rec.SecondVotes); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		rec.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse stored vote_date %q: %w", dateStr, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate result rows: %w", err)
	}
	return records, nil
}

// CountResults returns the number of stored rows.
func (r *SQLiteRepository) CountResults(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return n, nil
}

package results

import (
	"context"

	"wahlboard/internal/core"
)

// Ports for outbound adapters.
type (
	// Reader loads the full results table from a backing source.
	Reader interface {
		LoadResults(ctx context.Context) ([]core.VoteRecord, error)
	}

	// Writer replaces the stored results table with a fresh import.
	Writer interface {
		// ClearResults removes all stored rows ahead of a re-import.
		ClearResults(ctx context.Context) error
		// InsertResults appends a batch of rows and returns how many
		// were written.
		InsertResults(ctx context.Context, records []core.VoteRecord) (int, error)
	}

	// Exporter publishes national tallies to an external share target.
	Exporter interface {
		WriteNationalTotals(ctx context.Context, vt core.VoteType, totals []core.PartyTotal) error
	}
)

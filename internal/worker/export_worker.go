// Package worker syncs locally stored election results to the shared
// Google spreadsheet whenever an import announces fresh data.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"wahlboard/internal/amqp"
	"wahlboard/internal/core"
	"wahlboard/internal/results"
)

// ExportWorker recomputes national tallies from the stored results and
// writes them to the export target for both vote types.
type ExportWorker struct {
	store    results.Reader
	exporter results.Exporter
}

func NewExportWorker(store results.Reader, exporter results.Exporter) *ExportWorker {
	return &ExportWorker{store: store, exporter: exporter}
}

// HandleSyncMessage is the AMQP consume handler. Any error is returned
// so the message gets requeued.
func (w *ExportWorker) HandleSyncMessage(ctx context.Context, msg *amqp.DatasetSyncMessage) error {
	slog.InfoContext(ctx, "Exporting national totals", "import_id", msg.ImportID, "rows", msg.Rows)
	return w.ExportNow(ctx)
}

// ExportNow loads the stored results and exports the national tallies
// of both vote types. Used by the message handler and the periodic
// fallback ticker.
func (w *ExportWorker) ExportNow(ctx context.Context) error {
	records, err := w.store.LoadResults(ctx)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}
	if len(records) == 0 {
		slog.InfoContext(ctx, "No results stored, skipping export")
		return nil
	}

	for _, vt := range []core.VoteType{core.First, core.Second} {
		totals := core.TallyByParty(records, vt)
		if err := w.exporter.WriteNationalTotals(ctx, vt, totals); err != nil {
			return fmt.Errorf("export %s vote totals: %w", vt, err)
		}
		slog.InfoContext(ctx, "Exported national totals", "vote_type", vt, "parties", len(totals))
	}
	return nil
}

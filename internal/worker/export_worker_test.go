package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"wahlboard/internal/amqp"
	"wahlboard/internal/core"
)

type fakeStore struct {
	records []core.VoteRecord
	err     error
}

func (f fakeStore) LoadResults(ctx context.Context) ([]core.VoteRecord, error) {
	return f.records, f.err
}

type fakeExporter struct {
	calls map[core.VoteType][]core.PartyTotal
	err   error
}

func (f *fakeExporter) WriteNationalTotals(ctx context.Context, vt core.VoteType, totals []core.PartyTotal) error {
	if f.err != nil {
		return f.err
	}
	if f.calls == nil {
		f.calls = map[core.VoteType][]core.PartyTotal{}
	}
	f.calls[vt] = totals
	return nil
}

func rec(state, party string, first, second int64) core.VoteRecord {
	return core.VoteRecord{
		State:       state,
		Party:       party,
		Date:        time.Date(2025, 2, 23, 0, 0, 0, 0, time.UTC),
		FirstVotes:  first,
		SecondVotes: second,
	}
}

func TestHandleSyncMessageExportsBothVoteTypes(t *testing.T) {
	store := fakeStore{records: []core.VoteRecord{
		rec("Bayern", "A", 100, 600),
		rec("Hessen", "B", 300, 400),
	}}
	exp := &fakeExporter{}
	w := NewExportWorker(store, exp)

	msg := amqp.NewDatasetSyncMessage("import_1", 2)
	if err := w.HandleSyncMessage(context.Background(), msg); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(exp.calls) != 2 {
		t.Fatalf("expected exports for both vote types, got %d", len(exp.calls))
	}
	second := exp.calls[core.Second]
	if second[0].Party != "A" || second[0].Votes != 600 || second[0].Share != 60.0 {
		t.Fatalf("second vote head = %+v, want {A 600 60}", second[0])
	}
	first := exp.calls[core.First]
	if first[0].Party != "B" || first[0].Votes != 300 {
		t.Fatalf("first vote head = %+v, want B with 300", first[0])
	}
}

func TestExportNowEmptyStoreSkips(t *testing.T) {
	exp := &fakeExporter{}
	w := NewExportWorker(fakeStore{}, exp)
	if err := w.ExportNow(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exp.calls) != 0 {
		t.Fatalf("expected no export for empty store, got %d calls", len(exp.calls))
	}
}

func TestExportNowPropagatesErrors(t *testing.T) {
	w := NewExportWorker(fakeStore{err: errors.New("db locked")}, &fakeExporter{})
	if err := w.ExportNow(context.Background()); err == nil {
		t.Fatalf("expected load error to propagate")
	}

	w = NewExportWorker(
		fakeStore{records: []core.VoteRecord{rec("Bayern", "A", 1, 1)}},
		&fakeExporter{err: errors.New("quota exceeded")},
	)
	if err := w.ExportNow(context.Background()); err == nil {
		t.Fatalf("expected export error to propagate")
	}
}

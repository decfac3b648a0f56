package dataset

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestCSVSourceLoadResults(t *testing.T) {
	path := writeCSV(t, `state,party,date,first_votes,second_votes
Bayern,Christlich-Soziale Union in Bayern e.V.,2025-02-23,3000,2500
Bayern,Sozialdemokratische Partei Deutschlands,2025-02-23,1000,1200
Hessen,Sozialdemokratische Partei Deutschlands,2025-02-23,900,950
`)
	records, err := NewCSVSource(path).LoadResults(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	first := records[0]
	if first.State != "Bayern" || first.FirstVotes != 3000 || first.SecondVotes != 2500 {
		t.Fatalf("records[0] = %+v", first)
	}
	if first.Date.Year() != 2025 || int(first.Date.Month()) != 2 || first.Date.Day() != 23 {
		t.Fatalf("records[0].Date = %v, want 2025-02-23", first.Date)
	}
}

func TestCSVSourceColumnOrderIndependent(t *testing.T) {
	path := writeCSV(t, `party,second_votes,first_votes,date,state
A,20,10,2025-02-23,Bayern
`)
	records, err := NewCSVSource(path).LoadResults(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if records[0].FirstVotes != 10 || records[0].SecondVotes != 20 {
		t.Fatalf("columns mismatched: %+v", records[0])
	}
}

func TestCSVSourceMissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv")).LoadResults(context.Background())
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestCSVSourceMissingColumns(t *testing.T) {
	path := writeCSV(t, "state,party\nBayern,A\n")
	_, err := NewCSVSource(path).LoadResults(context.Background())
	if err == nil {
		t.Fatalf("expected error for missing header columns")
	}
}

func TestCSVSourceSkipsBadRows(t *testing.T) {
	path := writeCSV(t, `state,party,date,first_votes,second_votes
Bayern,A,2025-02-23,100,200
Bayern,B,not-a-date,100,200
Bayern,C,2025-02-23,abc,200
Bayern,D,2025-02-23,-5,200
Bayern,E,2025-02-23,1,2
`)
	records, err := NewCSVSource(path).LoadResults(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected bad rows skipped, got %d records", len(records))
	}
	if records[0].Party != "A" || records[1].Party != "E" {
		t.Fatalf("kept wrong rows: %+v", records)
	}
}

func TestDatasetStates(t *testing.T) {
	path := writeCSV(t, `state,party,date,first_votes,second_votes
Hessen,A,2025-02-23,1,1
Bayern,A,2025-02-23,1,1
Hessen,B,2025-02-23,1,1
Berlin,A,2025-02-23,1,1
`)
	records, err := NewCSVSource(path).LoadResults(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ds := New(records)
	want := []string{"Bayern", "Berlin", "Hessen"}
	if !reflect.DeepEqual(ds.States(), want) {
		t.Fatalf("states = %v, want %v", ds.States(), want)
	}
	if ds.Empty() || ds.Len() != 4 {
		t.Fatalf("len = %d empty=%v", ds.Len(), ds.Empty())
	}
}

func TestDatasetEmpty(t *testing.T) {
	ds := New(nil)
	if !ds.Empty() || ds.Len() != 0 || len(ds.States()) != 0 {
		t.Fatalf("expected empty dataset, got len=%d states=%v", ds.Len(), ds.States())
	}
}

package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"wahlboard/internal/core"
)

// Expected header columns of the results CSV.
const (
	colState       = "state"
	colParty       = "party"
	colDate        = "date"
	colFirstVotes  = "first_votes"
	colSecondVotes = "second_votes"
)

const dateLayout = "2006-01-02"

// CSVSource loads the results table from a local CSV file.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// LoadResults reads all rows. A missing or unreadable file is an error;
// callers substitute the empty dataset and surface it in the UI.
func (s *CSVSource) LoadResults(ctx context.Context) ([]core.VoteRecord, error) {
	out := make(chan core.VoteRecord, 64)
	var records []core.VoteRecord
	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range out {
			records = append(records, r)
		}
	}()
	err := StreamCSV(ctx, s.path, out)
	close(out)
	<-done
	if err != nil {
		return nil, err
	}
	return records, nil
}

// StreamCSV parses the CSV at path and sends valid records on out.
// The channel is not closed; that is the caller's job. Rows that fail
// to parse or validate are skipped and counted.
func StreamCSV(ctx context.Context, path string, out chan<- core.VoteRecord) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open results csv %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read csv header: %w", err)
	}
	cols, err := headerIndex(header)
	if err != nil {
		return err
	}

	var skipped int
	line := 1
	for {
		line++
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			slog.Warn("Skipping malformed csv row", "path", path, "line", line, "error", err)
			continue
		}
		rec, err := parseRow(row, cols)
		if err != nil {
			skipped++
			slog.Warn("Skipping invalid csv row", "path", path, "line", line, "error", err)
			continue
		}
		select {
		case out <- rec:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if skipped > 0 {
		slog.Warn("CSV load finished with skipped rows", "path", path, "skipped", skipped)
	}
	return nil
}

type columnIndex struct {
	state, party, date, first, second int
}

func headerIndex(header []string) (columnIndex, error) {
	idx := columnIndex{state: -1, party: -1, date: -1, first: -1, second: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case colState:
			idx.state = i
		case colParty:
			idx.party = i
		case colDate:
			idx.date = i
		case colFirstVotes:
			idx.first = i
		case colSecondVotes:
			idx.second = i
		}
	}
	var missing []string
	for _, c := range []struct {
		name string
		pos  int
	}{
		{colState, idx.state}, {colParty, idx.party}, {colDate, idx.date},
		{colFirstVotes, idx.first}, {colSecondVotes, idx.second},
	} {
		if c.pos == -1 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("csv header missing columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseRow(row []string, cols columnIndex) (core.VoteRecord, error) {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	date, err := time.Parse(dateLayout, get(cols.date))
	if err != nil {
		return core.VoteRecord{}, fmt.Errorf("parse date: %w", err)
	}
	first, err := strconv.ParseInt(get(cols.first), 10, 64)
	if err != nil {
		return core.VoteRecord{}, fmt.Errorf("parse first_votes: %w", err)
	}
	second, err := strconv.ParseInt(get(cols.second), 10, 64)
	if err != nil {
		return core.VoteRecord{}, fmt.Errorf("parse second_votes: %w", err)
	}
	rec := core.VoteRecord{
		State:       get(cols.state),
		Party:       get(cols.party),
		Date:        date,
		FirstVotes:  first,
		SecondVotes: second,
	}
	if err := rec.Validate(); err != nil {
		return core.VoteRecord{}, err
	}
	return rec, nil
}

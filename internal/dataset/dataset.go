// Package dataset holds the immutable in-memory results table the
// dashboard renders from. It is built once at process start and never
// mutated afterwards.
package dataset

import (
	"sort"

	"wahlboard/internal/core"
)

// Dataset is the read-only base table shared across requests.
type Dataset struct {
	records []core.VoteRecord
	states  []string
}

// New builds a Dataset from loaded records. A nil or empty slice yields
// the explicit empty state used when the source is unavailable.
func New(records []core.VoteRecord) *Dataset {
	seen := map[string]struct{}{}
	var states []string
	for _, r := range records {
		if _, ok := seen[r.State]; ok {
			continue
		}
		seen[r.State] = struct{}{}
		states = append(states, r.State)
	}
	sort.Strings(states)
	return &Dataset{records: records, states: states}
}

// Records returns the base table. Callers must treat it as read-only.
func (d *Dataset) Records() []core.VoteRecord {
	return d.records
}

// States returns the sorted distinct state names.
func (d *Dataset) States() []string {
	out := make([]string, len(d.states))
	copy(out, d.states)
	return out
}

func (d *Dataset) Len() int { return len(d.records) }

func (d *Dataset) Empty() bool { return len(d.records) == 0 }

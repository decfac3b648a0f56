package core

import "sort"

// Others is the synthetic category holding the residual share after a
// top-N cutoff.
const Others = "Others"

// OthersThreshold is the minimum residual share (in percentage points)
// that gets its own Others slice; smaller remainders are dropped.
const OthersThreshold = 0.05

// Top-N cutoff bounds exposed by the UI slider.
const (
	MinTopN = 2
	MaxTopN = 6
)

// TallyByParty sums the given vote type per party across all records and
// returns the totals sorted descending by votes. Shares are percentages
// of the grand total; when the grand total is zero every share is zero.
// Ties keep input order (stable sort).
func TallyByParty(records []VoteRecord, vt VoteType) []PartyTotal {
	sums := make(map[string]int64, 32)
	var order []string
	var total int64
	for _, r := range records {
		if _, seen := sums[r.Party]; !seen {
			order = append(order, r.Party)
		}
		v := r.Votes(vt)
		sums[r.Party] += v
		total += v
	}

	totals := make([]PartyTotal, 0, len(order))
	for _, party := range order {
		totals = append(totals, PartyTotal{Party: party, Votes: sums[party]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Votes > totals[j].Votes
	})
	if total > 0 {
		for i := range totals {
			totals[i].Share = float64(totals[i].Votes) / float64(total) * 100
		}
	}
	return totals
}

// StateTally tallies a single state's records, so shares are percentages
// of that state's total for the given vote type.
func StateTally(records []VoteRecord, state string, vt VoteType) []PartyTotal {
	var filtered []VoteRecord
	for _, r := range records {
		if r.State == state {
			filtered = append(filtered, r)
		}
	}
	return TallyByParty(filtered, vt)
}

// Winner returns the plurality winner of a tally, i.e. its head.
// ok is false for an empty tally.
func Winner(totals []PartyTotal) (PartyTotal, bool) {
	if len(totals) == 0 {
		return PartyTotal{}, false
	}
	return totals[0], true
}

// TopNWithOthers keeps the n largest entries of a descending tally and,
// when the remainder exceeds OthersThreshold percentage points, appends
// a synthetic Others entry holding the residual share (floored at 0).
// n is clamped to [MinTopN, MaxTopN].
func TopNWithOthers(totals []PartyTotal, n int) []PartyTotal {
	if len(totals) == 0 {
		return nil
	}
	n = ClampTopN(n)
	top := totals
	if len(top) > n {
		top = top[:n]
	}
	out := make([]PartyTotal, len(top))
	copy(out, top)

	var shown float64
	for _, t := range out {
		shown += t.Share
	}
	// A zero-total grouping has all-zero shares; the residual is
	// undefined there, so no Others slice is added.
	if shown == 0 {
		return out
	}
	residual := 100.0 - shown
	if residual < 0 {
		residual = 0
	}
	if residual > OthersThreshold {
		out = append(out, PartyTotal{Party: Others, Share: residual})
	}
	return out
}

// ClampTopN pulls n into the slider's [MinTopN, MaxTopN] range.
func ClampTopN(n int) int {
	if n < MinTopN {
		return MinTopN
	}
	if n > MaxTopN {
		return MaxTopN
	}
	return n
}

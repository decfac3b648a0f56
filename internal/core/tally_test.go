package core

import (
	"math"
	"testing"
	"time"
)

func rec(state, party string, first, second int64) VoteRecord {
	return VoteRecord{
		State:       state,
		Party:       party,
		Date:        time.Date(2025, 2, 23, 0, 0, 0, 0, time.UTC),
		FirstVotes:  first,
		SecondVotes: second,
	}
}

func TestTallyByPartyExample(t *testing.T) {
	// Two parties, A=600 and B=400 nationally.
	records := []VoteRecord{
		rec("Bayern", "A", 400, 400),
		rec("Hessen", "A", 200, 200),
		rec("Bayern", "B", 250, 250),
		rec("Hessen", "B", 150, 150),
	}
	totals := TallyByParty(records, Second)
	if len(totals) != 2 {
		t.Fatalf("expected 2 totals, got %d", len(totals))
	}
	if totals[0].Party != "A" || totals[0].Votes != 600 || totals[0].Share != 60.0 {
		t.Fatalf("totals[0] = %+v, want {A 600 60}", totals[0])
	}
	if totals[1].Party != "B" || totals[1].Votes != 400 || totals[1].Share != 40.0 {
		t.Fatalf("totals[1] = %+v, want {B 400 40}", totals[1])
	}
	if w, ok := Winner(totals); !ok || w.Party != "A" {
		t.Fatalf("winner = %+v ok=%v, want A", w, ok)
	}
}

func TestTallySharesSumTo100(t *testing.T) {
	records := []VoteRecord{
		rec("Bayern", "A", 123, 317),
		rec("Bayern", "B", 456, 89),
		rec("Hessen", "A", 789, 5),
		rec("Hessen", "C", 11, 999),
		rec("Berlin", "D", 7, 43),
	}
	for _, vt := range []VoteType{First, Second} {
		var sum float64
		for _, pt := range TallyByParty(records, vt) {
			sum += pt.Share
		}
		if math.Abs(sum-100.0) > 1e-6 {
			t.Fatalf("%s shares sum to %v, want 100", vt, sum)
		}
	}
}

func TestTallyTieKeepsInputOrder(t *testing.T) {
	records := []VoteRecord{
		rec("Bayern", "Later", 100, 100),
		rec("Bayern", "Earlier", 100, 100),
	}
	totals := TallyByParty(records, First)
	if totals[0].Party != "Later" {
		t.Fatalf("tie broken against input order: got %q first", totals[0].Party)
	}
	if w, _ := Winner(totals); w.Party != "Later" {
		t.Fatalf("tie winner = %q, want first-loaded party", w.Party)
	}
}

func TestTallyZeroTotal(t *testing.T) {
	records := []VoteRecord{
		rec("Bayern", "A", 0, 0),
		rec("Bayern", "B", 0, 0),
	}
	totals := TallyByParty(records, Second)
	for i, pt := range totals {
		if pt.Share != 0 {
			t.Fatalf("totals[%d].Share = %v, want 0 for zero grouping total", i, pt.Share)
		}
	}
}

func TestWinnerEmpty(t *testing.T) {
	if _, ok := Winner(nil); ok {
		t.Fatalf("expected no winner for empty tally")
	}
}

func TestTopNWithOthers(t *testing.T) {
	totals := []PartyTotal{
		{Party: "A", Votes: 400, Share: 40},
		{Party: "B", Votes: 200, Share: 20},
		{Party: "C", Votes: 100, Share: 10},
		{Party: "D", Votes: 90, Share: 9},
		{Party: "E", Votes: 80, Share: 8},
		{Party: "F", Votes: 70, Share: 7},
		{Party: "G", Votes: 60, Share: 6},
	}

	t.Run("residual becomes Others", func(t *testing.T) {
		// Top 3 hold 70%, so Others must carry the remaining 30.
		got := TopNWithOthers(totals, 3)
		if len(got) != 4 {
			t.Fatalf("expected 3 parties + Others, got %d entries", len(got))
		}
		last := got[3]
		if last.Party != Others {
			t.Fatalf("last entry = %q, want %q", last.Party, Others)
		}
		if math.Abs(last.Share-30.0) > 1e-9 {
			t.Fatalf("Others share = %v, want 30", last.Share)
		}
	})

	t.Run("tiny residual dropped", func(t *testing.T) {
		near := []PartyTotal{
			{Party: "A", Votes: 700, Share: 70},
			{Party: "B", Votes: 300, Share: 29.96},
		}
		got := TopNWithOthers(near, 2)
		if len(got) != 2 {
			t.Fatalf("expected no Others for residual <= %v, got %d entries", OthersThreshold, len(got))
		}
	})

	t.Run("clamps n to slider bounds", func(t *testing.T) {
		if got := TopNWithOthers(totals, 1); len(got) != MinTopN+1 { // 2 parties + Others
			t.Fatalf("n=1: got %d entries, want %d", len(got), MinTopN+1)
		}
		if got := TopNWithOthers(totals, 99); len(got) != MaxTopN+1 { // 6 parties + Others
			t.Fatalf("n=99: got %d entries, want %d", len(got), MaxTopN+1)
		}
	})

	t.Run("empty tally", func(t *testing.T) {
		if got := TopNWithOthers(nil, 3); got != nil {
			t.Fatalf("expected nil for empty tally, got %v", got)
		}
	})
}

func TestStateTally(t *testing.T) {
	records := []VoteRecord{
		rec("Bayern", "A", 100, 300),
		rec("Bayern", "B", 100, 100),
		rec("Hessen", "A", 900, 900),
	}
	totals := StateTally(records, "Bayern", Second)
	if len(totals) != 2 {
		t.Fatalf("expected 2 parties in state tally, got %d", len(totals))
	}
	if totals[0].Party != "A" || totals[0].Share != 75.0 {
		t.Fatalf("totals[0] = %+v, want A with 75%%", totals[0])
	}
}

func TestClampTopN(t *testing.T) {
	cases := []struct{ in, want int }{
		{1, 2}, {2, 2}, {4, 4}, {6, 6}, {7, 6}, {-3, 2},
	}
	for _, tc := range cases {
		if got := ClampTopN(tc.in); got != tc.want {
			t.Errorf("ClampTopN(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

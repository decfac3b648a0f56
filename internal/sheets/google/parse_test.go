package google

import (
	"testing"
)

func TestParseResults(t *testing.T) {
	values := [][]interface{}{
		{"state", "party", "date", "first_votes", "second_votes"},
		{"Bayern", "Christlich-Soziale Union in Bayern e.V.", "2025-02-23", "3000", "2500"},
		{"Hessen", "Sozialdemokratische Partei Deutschlands", "2025-02-23", 1000.0, 1200.0},
	}
	records, err := parseResults(values)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].State != "Bayern" || records[0].FirstVotes != 3000 {
		t.Fatalf("records[0] = %+v", records[0])
	}
	// Numeric cells come back as floats from the API.
	if records[1].FirstVotes != 1000 || records[1].SecondVotes != 1200 {
		t.Fatalf("records[1] = %+v", records[1])
	}
}

func TestParseResultsEmpty(t *testing.T) {
	records, err := parseResults(nil)
	if err != nil || records != nil {
		t.Fatalf("expected empty result, got %v / %v", records, err)
	}
}

func TestParseResultsBadHeader(t *testing.T) {
	values := [][]interface{}{
		{"state", "party", "date"},
		{"Bayern", "A", "2025-02-23"},
	}
	if _, err := parseResults(values); err == nil {
		t.Fatalf("expected error for missing header columns")
	}
}

func TestParseResultsBadRow(t *testing.T) {
	values := [][]interface{}{
		{"state", "party", "date", "first_votes", "second_votes"},
		{"Bayern", "A", "2025-02-23", "not-a-number", "1"},
	}
	if _, err := parseResults(values); err == nil {
		t.Fatalf("expected error for invalid vote count")
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12345", 12345, true},
		{"12345.0", 12345, true},
		{"1,234", 1234, true},
		{"", 0, false},
		{"12.5", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseCount(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseCount(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

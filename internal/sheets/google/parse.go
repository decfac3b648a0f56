package google

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"wahlboard/internal/core"
)

// parseResults converts a values matrix (as returned by the Sheets API)
// into vote records. Row 0 must be the header with state, party, date,
// first_votes and second_votes columns.
func parseResults(values [][]interface{}) ([]core.VoteRecord, error) {
	if len(values) == 0 {
		return nil, nil
	}
	headers := toStrings(values[0])
	colState := indexOf(headers, "state")
	colParty := indexOf(headers, "party")
	colDate := indexOf(headers, "date")
	colFirst := indexOf(headers, "first_votes")
	colSecond := indexOf(headers, "second_votes")
	if colState == -1 || colParty == -1 || colDate == -1 || colFirst == -1 || colSecond == -1 {
		return nil, fmt.Errorf("unexpected results header: got headers=%v", headers)
	}

	var records []core.VoteRecord
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		date, err := time.Parse("2006-01-02", safeGet(row, colDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: parse date: %w", i+1, err)
		}
		first, ok := parseCount(safeGet(row, colFirst))
		if !ok {
			return nil, fmt.Errorf("row %d: invalid first_votes %q", i+1, safeGet(row, colFirst))
		}
		second, ok := parseCount(safeGet(row, colSecond))
		if !ok {
			return nil, fmt.Errorf("row %d: invalid second_votes %q", i+1, safeGet(row, colSecond))
		}
		rec := core.VoteRecord{
			State:       safeGet(row, colState),
			Party:       safeGet(row, colParty),
			Date:        date,
			FirstVotes:  first,
			SecondVotes: second,
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseCount accepts plain integers and the float renderings the Sheets
// API produces for numeric cells (e.g. "12345.0").
func parseCount(s string) (int64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return int64(f), true
	}
	return 0, false
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = strings.TrimSpace(fmt.Sprintf("%v", v))
	}
	return out
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

func safeGet(row []string, i int) string {
	if i >= 0 && i < len(row) {
		return row[i]
	}
	return ""
}

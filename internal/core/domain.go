package core

import (
	"errors"
	"strings"
	"time"
)

const (
	// First is the constituency (direct candidate) vote.
	First VoteType = "first"
	// Second is the party-list vote.
	Second VoteType = "second"
)

type (
	// VoteType selects which of the two tallies of the mixed-member
	// system an aggregation operates on.
	VoteType string

	// VoteRecord is one row of the pre-aggregated results table:
	// the vote counts of a single party in a single state.
	// Records are immutable after load.
	VoteRecord struct {
		State       string
		Party       string
		Date        time.Time
		FirstVotes  int64
		SecondVotes int64
	}

	// PartyTotal is a party's summed votes and its percentage share
	// of the grouping total.
	PartyTotal struct {
		Party string
		Votes int64
		Share float64 // 0..100
	}
)

var (
	ErrEmptyState    = errors.New("empty state")
	ErrEmptyParty    = errors.New("empty party")
	ErrNegativeVotes = errors.New("negative vote count")
	ErrZeroDate      = errors.New("zero date")
)

// IsValid reports whether vt is one of the two known vote types.
func (vt VoteType) IsValid() bool {
	return vt == First || vt == Second
}

// Votes returns the count for the requested vote type.
func (r VoteRecord) Votes(vt VoteType) int64 {
	if vt == First {
		return r.FirstVotes
	}
	return r.SecondVotes
}

func (r VoteRecord) Validate() error {
	if strings.TrimSpace(r.State) == "" {
		return ErrEmptyState
	}
	if strings.TrimSpace(r.Party) == "" {
		return ErrEmptyParty
	}
	if r.Date.IsZero() {
		return ErrZeroDate
	}
	if r.FirstVotes < 0 || r.SecondVotes < 0 {
		return ErrNegativeVotes
	}
	return nil
}

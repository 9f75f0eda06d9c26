package store

import (
	"context"
	"time"
)

// QueryOpts configures round queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// RoundRecord is one scored round as kept in the round log.
type RoundRecord struct {
	Sequence int64
	RoundID  string
	PlayedAt time.Time
	Total    int
	Ordering []string
	Points   []int
}

// RoundRepo records the rounds played in the current process.
type RoundRepo interface {
	// AppendRound stores a scored round. Sequence is assigned by the store.
	AppendRound(ctx context.Context, rec RoundRecord) error

	// ListRounds returns rounds newest first.
	ListRounds(ctx context.Context, opts QueryOpts) ([]RoundRecord, error)
}

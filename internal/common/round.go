package common

import (
	"time"

	"github.com/shopspring/decimal"
)

// Round is one funding round as configured for a dashboard program.
type Round struct {
	Program      string          `json:"program"`
	RoundId      string          `json:"round_id"`
	ChainId      uint64          `json:"chain_id"`
	Name         string          `json:"round_name"`
	MatchingPool decimal.Decimal `json:"matching_pool"`
	StartingTime time.Time       `json:"starting_time"`
}

// ChainRound is a round as listed by the indexer for a whole chain.
type ChainRound struct {
	RoundId        string          `json:"round_id"`
	ChainId        uint64          `json:"chain_id"`
	Name           string          `json:"name"`
	AmountUSD      decimal.Decimal `json:"amount_usd"`
	Votes          uint64          `json:"votes"`
	RoundStartTime time.Time       `json:"round_start_time"`
	RoundEndTime   time.Time       `json:"round_end_time"`
}

func (r ChainRound) IsLive(now time.Time) bool {
	return r.Votes > 0 && r.RoundStartTime.Before(now) && r.RoundEndTime.After(now)
}

package common

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vote is a single donation to a project.
type Vote struct {
	Id          string          `json:"id"`
	Voter       string          `json:"voter"`
	ProjectId   string          `json:"project_id"`
	ChainId     uint64          `json:"chain_id"`
	RoundId     string          `json:"round_id"`
	RoundName   string          `json:"round_name"`
	BlockNumber uint64          `json:"block_number"`
	Token       string          `json:"token"`
	AmountUSD   decimal.Decimal `json:"amount_usd"`

	TokenSymbol string     `json:"token_symbol,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

func (v Vote) Key() RowKey {
	return RowKey{ChainId: v.ChainId, RoundId: v.RoundId, Id: v.Id}
}

// ProjectKey is the key of the project this vote was cast for.
func (v Vote) ProjectKey() RowKey {
	return RowKey{ChainId: v.ChainId, RoundId: v.RoundId, Id: v.ProjectId}
}

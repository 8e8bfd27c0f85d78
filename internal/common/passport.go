package common

import (
	"time"

	"github.com/shopspring/decimal"
)

type Passport struct {
	Address            string          `json:"address"`
	LastScoreTimestamp time.Time       `json:"last_score_timestamp"`
	Status             string          `json:"status"`
	RawScore           decimal.Decimal `json:"raw_score"`
}

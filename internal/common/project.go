package common

import "github.com/shopspring/decimal"

type ProjectStatus string

const (
	ProjectStatusApproved ProjectStatus = "APPROVED"
	ProjectStatusPending  ProjectStatus = "PENDING"
	ProjectStatusRejected ProjectStatus = "REJECTED"
)

type Project struct {
	ProjectId          string          `json:"project_id"`
	Title              string          `json:"title"`
	GrantAddress       string          `json:"grant_address"`
	Status             ProjectStatus   `json:"status"`
	AmountUSD          decimal.Decimal `json:"amount_usd"`
	Votes              uint64          `json:"votes"`
	UniqueContributors uint64          `json:"unique_contributors"`
	Description        string          `json:"description,omitempty"`

	RoundId   string `json:"round_id"`
	ChainId   uint64 `json:"chain_id"`
	RoundName string `json:"round_name"`
}

// Key identifies a project across rounds; project ids are only unique within a round on a chain.
func (p Project) Key() RowKey {
	return RowKey{ChainId: p.ChainId, RoundId: p.RoundId, Id: p.ProjectId}
}

type RowKey struct {
	ChainId uint64
	RoundId string
	Id      string
}

package types

// ParquetProject is one enriched project row in a snapshot parquet file
type ParquetProject struct {
	SnapshotId         string `parquet:"snapshot_id"`
	ChainId            uint64 `parquet:"chain_id"`
	RoundId            string `parquet:"round_id"`
	RoundName          string `parquet:"round_name"`
	ProjectId          string `parquet:"project_id"`
	Title              string `parquet:"title"`
	GrantAddress       string `parquet:"grant_address"`
	Status             string `parquet:"status"`
	AmountUSD          string `parquet:"amount_usd"`
	Votes              uint64 `parquet:"votes"`
	UniqueContributors uint64 `parquet:"unique_contributors"`
}

// ParquetVote is one enriched vote row in a snapshot parquet file.
// Timestamp is unix seconds and absent when the chain had no baseline block.
type ParquetVote struct {
	SnapshotId  string `parquet:"snapshot_id"`
	ChainId     uint64 `parquet:"chain_id"`
	RoundId     string `parquet:"round_id"`
	RoundName   string `parquet:"round_name"`
	VoteId      string `parquet:"vote_id"`
	Voter       string `parquet:"voter"`
	ProjectId   string `parquet:"project_id"`
	BlockNumber uint64 `parquet:"block_number"`
	Token       string `parquet:"token"`
	TokenSymbol string `parquet:"token_symbol"`
	AmountUSD   string `parquet:"amount_usd"`
	Timestamp   *int64 `parquet:"timestamp"`
}

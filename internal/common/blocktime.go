package common

import (
	"time"
)

const EthereumMainnetChainId uint64 = 1

const (
	mainnetBlockTime = 12 * time.Second
	defaultBlockTime = 2 * time.Second
)

// SecondsPerBlock is the fixed block interval assumed when converting block numbers to wall-clock time.
func SecondsPerBlock(chainId uint64) time.Duration {
	if chainId == EthereumMainnetChainId {
		return mainnetBlockTime
	}
	return defaultBlockTime
}

// BlockTimestamp approximates the time of blockNumber linearly from a baseline block observed at start.
func BlockTimestamp(start time.Time, blockNumber uint64, baseline uint64, chainId uint64) time.Time {
	delta := int64(blockNumber) - int64(baseline)
	return start.Add(time.Duration(delta) * SecondsPerBlock(chainId))
}

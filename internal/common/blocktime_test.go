package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecondsPerBlock(t *testing.T) {
	assert.Equal(t, 12*time.Second, SecondsPerBlock(1))
	assert.Equal(t, 2*time.Second, SecondsPerBlock(10))
	assert.Equal(t, 2*time.Second, SecondsPerBlock(424))
	assert.Equal(t, 2*time.Second, SecondsPerBlock(0))
}

func TestBlockTimestamp(t *testing.T) {
	start := time.Date(2023, 8, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, start, BlockTimestamp(start, 100, 100, 1))
	assert.Equal(t, start.Add(60*time.Second), BlockTimestamp(start, 105, 100, 1))
	assert.Equal(t, start.Add(20*time.Second), BlockTimestamp(start, 110, 100, 10))
	// blocks before the baseline move backwards in time
	assert.Equal(t, start.Add(-24*time.Second), BlockTimestamp(start, 98, 100, 1))
}

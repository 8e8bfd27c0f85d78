package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	config "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/common"
)

func TestMemoryConnector_CacheTTL(t *testing.T) {
	conn, err := NewMemoryConnector(&config.MemoryConfig{MaxItems: 10}, 15*time.Minute)
	require.NoError(t, err)
	defer conn.Close()

	now := time.Date(2023, 8, 15, 12, 0, 0, 0, time.UTC)
	conn.now = func() time.Time { return now }

	ctx := context.Background()
	_, ok, err := conn.Get(ctx, "https://indexer/1/rounds/r1/votes.json")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, conn.Set(ctx, "https://indexer/1/rounds/r1/votes.json", []byte(`[]`)))

	now = now.Add(14 * time.Minute)
	value, ok, err := conn.Get(ctx, "https://indexer/1/rounds/r1/votes.json")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), value)

	now = now.Add(time.Minute)
	_, ok, err = conn.Get(ctx, "https://indexer/1/rounds/r1/votes.json")
	require.NoError(t, err)
	assert.False(t, ok, "entry should be stale after the ttl")
}

func TestMemoryConnector_Snapshot(t *testing.T) {
	conn, err := NewMemoryConnector(&config.MemoryConfig{}, DEFAULT_CACHE_TTL)
	require.NoError(t, err)

	meta := SnapshotMeta{Id: "s1", Program: "GG18", GeneratedAt: time.Now()}
	projects := []common.Project{
		{ProjectId: "p1", Title: "A", RoundId: "r1", ChainId: 1, AmountUSD: decimal.NewFromInt(3)},
		// same project id in another round is a distinct row
		{ProjectId: "p1", Title: "B", RoundId: "r2", ChainId: 10, AmountUSD: decimal.NewFromInt(4)},
	}
	require.NoError(t, conn.InsertProjects(meta, projects))
	require.NoError(t, conn.InsertVotes(meta, []common.Vote{{Id: "v1", ProjectId: "p1", RoundId: "r1", ChainId: 1}}))
	require.NoError(t, conn.InsertVotes(SnapshotMeta{Id: "s2"}, []common.Vote{{Id: "v9", RoundId: "r1", ChainId: 1}}))

	assert.Equal(t, 4, conn.snapshots.Len())

	value, ok := conn.snapshots.Get(snapshotKey("project", "s1", common.RowKey{ChainId: 10, RoundId: "r2", Id: "p1"}))
	require.True(t, ok)
	stored := common.Project{}
	require.NoError(t, json.Unmarshal([]byte(value), &stored))
	assert.Equal(t, "B", stored.Title)
	assert.True(t, decimal.NewFromInt(4).Equal(stored.AmountUSD))

	_, ok = conn.snapshots.Get(snapshotKey("vote", "s2", common.RowKey{ChainId: 1, RoundId: "r1", Id: "v9"}))
	assert.True(t, ok)
}

func TestBadgerConnector_Cache(t *testing.T) {
	conn, err := NewBadgerConnector(&config.BadgerConfig{InMemory: true}, time.Hour)
	require.NoError(t, err)
	defer conn.Close()

	ctx := context.Background()
	_, ok, err := conn.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, conn.Set(ctx, "https://indexer/passport_scores.json", []byte(`[{"address":"0xa"}]`)))
	value, ok, err := conn.Get(ctx, "https://indexer/passport_scores.json")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"address":"0xa"}]`, string(value))
}

func TestNewConnector(t *testing.T) {
	conn, err := NewSnapshotConnector(&config.StorageConnectionConfig{Memory: &config.MemoryConfig{}})
	require.NoError(t, err)
	assert.IsType(t, &MemoryConnector{}, conn)

	_, err = NewSnapshotConnector(&config.StorageConnectionConfig{})
	assert.Error(t, err)

	cache, err := NewCache(&config.CacheConfig{})
	require.NoError(t, err)
	assert.Equal(t, DEFAULT_CACHE_TTL, cache.(*MemoryConnector).ttl)
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	config "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/common"
)

type cacheEntry struct {
	value     []byte
	fetchedAt time.Time
}

// MemoryConnector keeps cached responses and the latest snapshot rows in process.
type MemoryConnector struct {
	cache     *lru.Cache[string, cacheEntry]
	snapshots *lru.Cache[string, string]
	ttl       time.Duration
	now       func() time.Time
}

func NewMemoryConnector(cfg *config.MemoryConfig, ttl time.Duration) (*MemoryConnector, error) {
	maxItems := 1000
	if cfg.MaxItems > 0 {
		maxItems = cfg.MaxItems
	}

	cache, err := lru.New[string, cacheEntry](maxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}

	// snapshot rows are far more numerous than cached responses
	snapshots, err := lru.New[string, string](maxItems * 100)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}

	return &MemoryConnector{
		cache:     cache,
		snapshots: snapshots,
		ttl:       ttl,
		now:       time.Now,
	}, nil
}

func (m *MemoryConnector) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry, ok := m.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	if m.now().Sub(entry.fetchedAt) >= m.ttl {
		m.cache.Remove(key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryConnector) Set(ctx context.Context, key string, value []byte) error {
	m.cache.Add(key, cacheEntry{value: value, fetchedAt: m.now()})
	return nil
}

func (m *MemoryConnector) InsertProjects(meta SnapshotMeta, projects []common.Project) error {
	for _, project := range projects {
		projectJson, err := json.Marshal(project)
		if err != nil {
			return err
		}
		m.snapshots.Add(snapshotKey("project", meta.Id, project.Key()), string(projectJson))
	}
	return nil
}

func (m *MemoryConnector) InsertVotes(meta SnapshotMeta, votes []common.Vote) error {
	for _, vote := range votes {
		voteJson, err := json.Marshal(vote)
		if err != nil {
			return err
		}
		m.snapshots.Add(snapshotKey("vote", meta.Id, vote.Key()), string(voteJson))
	}
	return nil
}

func (m *MemoryConnector) Close() error {
	m.cache.Purge()
	m.snapshots.Purge()
	return nil
}

func snapshotKey(kind string, snapshotId string, key common.RowKey) string {
	return fmt.Sprintf("%s:%s:%d:%s:%s", kind, snapshotId, key.ChainId, key.RoundId, key.Id)
}

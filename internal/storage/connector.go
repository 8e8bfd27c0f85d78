package storage

import (
	"context"
	"fmt"
	"time"

	config "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/common"
)

const DEFAULT_CACHE_TTL = 900 * time.Second

// ICache stores raw indexer response bodies keyed by request url.
type ICache interface {
	// Get returns false when the key is absent or older than the cache TTL.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// SnapshotMeta identifies one refresh whose tables are being persisted.
type SnapshotMeta struct {
	Id          string
	Program     string
	GeneratedAt time.Time
}

type ISnapshotStorage interface {
	InsertProjects(meta SnapshotMeta, projects []common.Project) error
	InsertVotes(meta SnapshotMeta, votes []common.Vote) error
	Close() error
}

func cacheTTL(cfg *config.CacheConfig) time.Duration {
	if cfg.TTL > 0 {
		return time.Duration(cfg.TTL) * time.Second
	}
	return DEFAULT_CACHE_TTL
}

func NewCache(cfg *config.CacheConfig) (ICache, error) {
	ttl := cacheTTL(cfg)
	if cfg.Redis != nil {
		return NewRedisConnector(cfg.Redis, ttl)
	} else if cfg.Badger != nil {
		return NewBadgerConnector(cfg.Badger, ttl)
	} else if cfg.Memory != nil {
		return NewMemoryConnector(cfg.Memory, ttl)
	}
	return NewMemoryConnector(&config.MemoryConfig{}, ttl)
}

func NewSnapshotConnector(cfg *config.StorageConnectionConfig) (ISnapshotStorage, error) {
	return NewConnector[ISnapshotStorage](cfg)
}

func NewConnector[T any](cfg *config.StorageConnectionConfig) (T, error) {
	var conn interface{}
	var err error
	if cfg.Clickhouse != nil {
		conn, err = NewClickHouseConnector(cfg.Clickhouse)
	} else if cfg.Postgres != nil {
		conn, err = NewPostgresConnector(cfg.Postgres)
	} else if cfg.Memory != nil {
		conn, err = NewMemoryConnector(cfg.Memory, DEFAULT_CACHE_TTL)
	} else {
		return *new(T), fmt.Errorf("no storage driver configured")
	}

	if err != nil {
		return *new(T), err
	}

	typedConn, ok := conn.(T)
	if !ok {
		return *new(T), fmt.Errorf("connector does not implement the required interface")
	}

	return typedConn, nil
}

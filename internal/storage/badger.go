package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/grants-insight/configs"
)

// BadgerConnector is an on-disk response cache that survives restarts.
type BadgerConnector struct {
	db       *badger.DB
	ttl      time.Duration
	gcTicker *time.Ticker
	stopGC   chan struct{}
}

func NewBadgerConnector(cfg *config.BadgerConfig, ttl time.Duration) (*BadgerConnector, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		path := cfg.Path
		if path == "" {
			path = filepath.Join(os.TempDir(), "grants-insight-cache")
		}
		opts = badger.DefaultOptions(path)
		opts.Compression = options.Snappy
	}
	opts.Logger = nil // Disable badger's internal logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	bc := &BadgerConnector{
		db:     db,
		ttl:    ttl,
		stopGC: make(chan struct{}),
	}

	if !cfg.InMemory {
		bc.gcTicker = time.NewTicker(time.Duration(60) * time.Second)
		go bc.runGC()
	}

	return bc, nil
}

func (bc *BadgerConnector) runGC() {
	for {
		select {
		case <-bc.gcTicker.C:
			err := bc.db.RunValueLogGC(0.5)
			if err != nil && err != badger.ErrNoRewrite {
				log.Debug().Err(err).Msg("BadgerDB GC error")
			}
		case <-bc.stopGC:
			return
		}
	}
}

func (bc *BadgerConnector) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := bc.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached response: %w", err)
	}
	return value, true, nil
}

func (bc *BadgerConnector) Set(ctx context.Context, key string, value []byte) error {
	return bc.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), value).WithTTL(bc.ttl))
	})
}

func (bc *BadgerConnector) Close() error {
	if bc.gcTicker != nil {
		bc.gcTicker.Stop()
		close(bc.stopGC)
	}
	return bc.db.Close()
}

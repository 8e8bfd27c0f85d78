package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/export"
	"github.com/thirdweb-dev/grants-insight/internal/orchestrator"
	"github.com/thirdweb-dev/grants-insight/internal/publisher"
	"github.com/thirdweb-dev/grants-insight/internal/source"
	"github.com/thirdweb-dev/grants-insight/internal/storage"
)

const METRICS_ADDR = ":2112"

// app holds the components shared by the commands of one process.
type app struct {
	source       *source.GrantsStackSource
	orchestrator *orchestrator.Orchestrator
	exportSink   *orchestrator.ExportSink
	closers      []func() error
}

var (
	sharedApp      *app
	sharedAppOnce  sync.Once
	sharedAppErr   error
	orchestratorGo sync.Once
)

func getApp(ctx context.Context) (*app, error) {
	sharedAppOnce.Do(func() {
		sharedApp, sharedAppErr = newApp(ctx)
	})
	return sharedApp, sharedAppErr
}

func newSource() (*source.GrantsStackSource, storage.ICache, error) {
	cache, err := storage.NewCache(&config.Cfg.Cache)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return source.NewGrantsStackSource(&config.Cfg.Source, cache), cache, nil
}

func newApp(ctx context.Context) (*app, error) {
	a := &app{}

	src, cache, err := newSource()
	if err != nil {
		return nil, err
	}
	a.source = src
	a.closers = append(a.closers, cache.Close)

	rounds, err := orchestrator.LoadRounds(&config.Cfg.Dashboard)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load rounds: %w", err)
	}
	if len(rounds) == 0 {
		log.Warn().Str("program", config.Cfg.Dashboard.Program).Msg("No rounds configured for program")
	}

	sinks := []orchestrator.ISink{}

	snapshotStorage, err := storage.NewSnapshotConnector(&config.Cfg.Storage.Snapshot)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create snapshot storage: %w", err)
	}
	a.closers = append(a.closers, snapshotStorage.Close)
	sinks = append(sinks, orchestrator.NewSnapshotSink(snapshotStorage, config.Cfg.Dashboard.Program))

	var uploader *export.S3Uploader
	if config.Cfg.Export.S3 != nil && config.Cfg.Export.S3.Bucket != "" {
		uploader, err = export.NewS3Uploader(ctx, config.Cfg.Export.S3)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create s3 uploader: %w", err)
		}
	}
	a.exportSink = orchestrator.NewExportSink(&config.Cfg.Export, config.Cfg.Dashboard.Program, uploader)
	if uploader != nil {
		sinks = append(sinks, a.exportSink)
	}

	if config.Cfg.Publisher.Enabled {
		pub, err := publisher.NewPublisher(&config.Cfg.Publisher)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create publisher: %w", err)
		}
		a.closers = append(a.closers, pub.Close)
		sinks = append(sinks, orchestrator.NewPublisherSink(pub))
	}

	a.orchestrator = orchestrator.NewOrchestrator(src, rounds,
		orchestrator.WithParallelism(config.Cfg.Source.Parallelism),
		orchestrator.WithRefreshInterval(time.Duration(config.Cfg.Dashboard.RefreshInterval)*time.Second),
		orchestrator.WithSinks(sinks...),
	)
	return a, nil
}

// startOrchestrator runs the refresh loop in the background once per process.
func (a *app) startOrchestrator(ctx context.Context) {
	orchestratorGo.Do(func() {
		go a.orchestrator.Start(ctx)
	})
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Error().Err(err).Msg("Error closing component")
		}
	}
}

func serveMetrics() {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Info().Str("addr", METRICS_ADDR).Msg("Serving metrics")
		if err := http.ListenAndServe(METRICS_ADDR, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Metrics server stopped")
		}
	}()
}

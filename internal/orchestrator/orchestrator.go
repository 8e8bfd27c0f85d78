package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/grants-insight/internal/common"
	"github.com/thirdweb-dev/grants-insight/internal/metrics"
	"github.com/thirdweb-dev/grants-insight/internal/pipeline"
	"github.com/thirdweb-dev/grants-insight/internal/source"
	"golang.org/x/sync/errgroup"
)

const DEFAULT_PARALLELISM = 4
const DEFAULT_REFRESH_INTERVAL = 900 * time.Second

type Orchestrator struct {
	source          source.ISource
	rounds          []common.Round
	parallelism     int
	refreshInterval time.Duration
	sinks           []ISink
	current         atomic.Pointer[pipeline.Session]
	cancel          context.CancelFunc
}

type OrchestratorOption func(*Orchestrator)

func WithParallelism(parallelism int) OrchestratorOption {
	return func(o *Orchestrator) {
		if parallelism > 0 {
			o.parallelism = parallelism
		}
	}
}

func WithRefreshInterval(interval time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if interval > 0 {
			o.refreshInterval = interval
		}
	}
}

func WithSinks(sinks ...ISink) OrchestratorOption {
	return func(o *Orchestrator) {
		o.sinks = append(o.sinks, sinks...)
	}
}

func NewOrchestrator(src source.ISource, rounds []common.Round, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		source:          src,
		rounds:          rounds,
		parallelism:     DEFAULT_PARALLELISM,
		refreshInterval: DEFAULT_REFRESH_INTERVAL,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Current returns the latest successfully built session, or nil before the first refresh.
func (o *Orchestrator) Current() *pipeline.Session {
	return o.current.Load()
}

// Refresh fetches every configured round and replaces the current session.
// A round table that cannot be fetched becomes a warning; any other error aborts
// and leaves the previous session in place.
func (o *Orchestrator) Refresh(ctx context.Context) (*pipeline.Session, error) {
	start := time.Now()

	results := make([]pipeline.RoundData, len(o.rounds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for i, round := range o.rounds {
		g.Go(func() error {
			data, err := o.fetchRound(gctx, round)
			if err != nil {
				return err
			}
			results[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.FailedRefreshes.Inc()
		return nil, err
	}
	// an interrupted refresh must not replace the session
	if err := ctx.Err(); err != nil {
		metrics.FailedRefreshes.Inc()
		return nil, fmt.Errorf("refresh interrupted: %w", err)
	}

	session := pipeline.Build(o.rounds, results)
	o.current.Store(session)

	metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	metrics.SuccessfulRefreshes.Inc()
	metrics.LastRefreshTimestamp.Set(float64(session.GeneratedAt.Unix()))
	metrics.RoundWarnings.Set(float64(len(session.Warnings)))
	metrics.SessionProjects.Set(float64(len(session.Projects)))
	metrics.SessionVotes.Set(float64(len(session.Votes)))

	log.Info().
		Str("session", session.Id).
		Int("rounds", len(o.rounds)).
		Int("projects", len(session.Projects)).
		Int("votes", len(session.Votes)).
		Int("warnings", len(session.Warnings)).
		Dur("took", time.Since(start)).
		Msg("Session refreshed")

	o.publish(ctx, session)
	return session, nil
}

func (o *Orchestrator) fetchRound(ctx context.Context, round common.Round) (pipeline.RoundData, error) {
	data := pipeline.RoundData{Round: round}

	projects, err := o.source.GetRoundProjects(ctx, round.ChainId, round.RoundId)
	if warning, ok := fetchWarning(round, "projects", err); ok {
		data.Warnings = append(data.Warnings, warning)
	} else if err != nil {
		return data, fmt.Errorf("round %s on chain %d: %w", round.RoundId, round.ChainId, err)
	}
	data.Projects = projects

	votes, err := o.source.GetRoundVotes(ctx, round.ChainId, round.RoundId)
	if warning, ok := fetchWarning(round, "votes", err); ok {
		data.Warnings = append(data.Warnings, warning)
	} else if err != nil {
		return data, fmt.Errorf("round %s on chain %d: %w", round.RoundId, round.ChainId, err)
	}
	data.Votes = votes

	return data, nil
}

func fetchWarning(round common.Round, table string, err error) (pipeline.Warning, bool) {
	var fetchErr *source.FetchError
	if !errors.As(err, &fetchErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return pipeline.Warning{}, false
	}
	log.Warn().Err(err).
		Str("round", round.RoundId).
		Uint64("chain", round.ChainId).
		Str("table", table).
		Msg("Could not fetch round data, continuing without it")
	return pipeline.Warning{
		ChainId: round.ChainId,
		RoundId: round.RoundId,
		Table:   table,
		Message: fetchErr.Error(),
	}, true
}

// publish hands the session to every sink. Sink failures never fail the refresh.
func (o *Orchestrator) publish(ctx context.Context, session *pipeline.Session) {
	for _, sink := range o.sinks {
		if err := sink.Handle(ctx, session); err != nil {
			metrics.SinkErrors.WithLabelValues(sink.Name()).Inc()
			log.Error().Err(err).Str("sink", sink.Name()).Str("session", session.Id).Msg("Failed to hand session to sink")
		}
	}
}

// Start refreshes immediately and then on every interval until ctx is cancelled
// or the process receives SIGINT or SIGTERM.
func (o *Orchestrator) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info().Msgf("Received signal %v, initiating graceful shutdown", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	o.run(ctx)
}

func (o *Orchestrator) run(ctx context.Context) {
	ticker := time.NewTicker(o.refreshInterval)
	defer ticker.Stop()
	log.Debug().Dur("interval", o.refreshInterval).Msg("Orchestrator running")

	o.refreshAndLog(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Orchestrator shutting down")
			return
		case <-ticker.C:
			o.refreshAndLog(ctx)
		}
	}
}

func (o *Orchestrator) refreshAndLog(ctx context.Context) {
	if _, err := o.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Error().Err(err).Msg("Session refresh failed, keeping the previous session")
	}
}

func (o *Orchestrator) Shutdown() {
	if o.cancel != nil {
		o.cancel()
	}
}

// HasSink reports whether a sink with the given name receives sessions.
func (o *Orchestrator) HasSink(name string) bool {
	for _, sink := range o.sinks {
		if sink.Name() == name {
			return true
		}
	}
	return false
}

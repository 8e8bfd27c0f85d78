package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Source Metrics
var (
	SourceRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grants_fetch_requests_total",
		Help: "The total number of requests sent to the grants indexer",
	}, []string{"endpoint", "status"})

	SourceFetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grants_fetch_failures_total",
		Help: "The total number of indexer fetches that failed",
	}, []string{"endpoint"})

	SourceFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "grants_fetch_duration_seconds",
		Help:    "Time spent fetching a single indexer endpoint",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

// Cache Metrics
var (
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grants_cache_hits_total",
		Help: "The total number of indexer responses served from cache",
	}, []string{"endpoint"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grants_cache_misses_total",
		Help: "The total number of indexer responses not found in cache",
	}, []string{"endpoint"})
)

// Orchestrator Metrics
var (
	RefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "orchestrator_refresh_duration_seconds",
		Help:    "Time taken to build a dashboard session",
		Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
	})

	SuccessfulRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orchestrator_successful_refreshes_total",
		Help: "The total number of completed session refreshes",
	})

	FailedRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orchestrator_failed_refreshes_total",
		Help: "The total number of session refreshes aborted by an error",
	})

	LastRefreshTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "orchestrator_last_refresh_timestamp",
		Help: "Unix time of the last completed session refresh",
	})

	RoundWarnings = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "orchestrator_round_warnings",
		Help: "The number of round tables that could not be fetched in the last refresh",
	})
)

// Session Metrics
var (
	SessionProjects = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "session_projects",
		Help: "The number of projects in the current session",
	})

	SessionVotes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "session_votes",
		Help: "The number of votes in the current session",
	})
)

// Sink Metrics
var (
	SinkErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sink_errors_total",
		Help: "The total number of errors while handing a session to a sink",
	}, []string{"sink"})

	PublishedVotes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "publisher_published_votes_total",
		Help: "The total number of vote records published to kafka",
	})

	PublishDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "publisher_publish_duration_seconds",
		Help:    "Time spent publishing a session to kafka",
		Buckets: prometheus.DefBuckets,
	})
)

// API Metrics
var (
	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "api_request_duration_seconds",
		Help:    "Time spent serving an API request",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)

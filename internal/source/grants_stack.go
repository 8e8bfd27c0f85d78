package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/common"
	"github.com/thirdweb-dev/grants-insight/internal/metrics"
	"github.com/thirdweb-dev/grants-insight/internal/storage"
)

const (
	DEFAULT_SOURCE_URL     = "https://indexer-grants-stack.gitcoin.co/data"
	DEFAULT_SOURCE_TIMEOUT = 30 * time.Second
)

const (
	endpointApplications   = "applications"
	endpointVotes          = "votes"
	endpointPassportScores = "passport_scores"
	endpointRounds         = "rounds"
)

// GrantsStackSource reads round data from the public grants-stack indexer.
type GrantsStackSource struct {
	baseURL string
	client  *http.Client
	cache   storage.ICache
}

func NewGrantsStackSource(cfg *config.SourceConfig, cache storage.ICache) *GrantsStackSource {
	baseURL := strings.TrimSuffix(cfg.URL, "/")
	if baseURL == "" {
		baseURL = DEFAULT_SOURCE_URL
	}
	timeout := DEFAULT_SOURCE_TIMEOUT
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return &GrantsStackSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		cache:   cache,
	}
}

func (s *GrantsStackSource) GetRoundProjects(ctx context.Context, chainId uint64, roundId string) ([]common.Project, error) {
	url := fmt.Sprintf("%s/%d/rounds/%s/applications.json", s.baseURL, chainId, roundId)
	objects, err := s.fetchObjects(ctx, endpointApplications, url)
	if err != nil {
		return nil, err
	}
	return normalizeProjects(objects)
}

func (s *GrantsStackSource) GetRoundVotes(ctx context.Context, chainId uint64, roundId string) ([]common.Vote, error) {
	url := fmt.Sprintf("%s/%d/rounds/%s/votes.json", s.baseURL, chainId, roundId)
	objects, err := s.fetchObjects(ctx, endpointVotes, url)
	if err != nil {
		return nil, err
	}
	return normalizeVotes(objects)
}

func (s *GrantsStackSource) GetPassportScores(ctx context.Context) ([]common.Passport, error) {
	url := fmt.Sprintf("%s/passport_scores.json", s.baseURL)
	objects, err := s.fetchObjects(ctx, endpointPassportScores, url)
	if err != nil {
		return nil, err
	}
	return normalizePassports(objects)
}

func (s *GrantsStackSource) GetChainRounds(ctx context.Context, chainId uint64) ([]common.ChainRound, error) {
	url := fmt.Sprintf("%s/%d/rounds.json", s.baseURL, chainId)
	objects, err := s.fetchObjects(ctx, endpointRounds, url)
	if err != nil {
		return nil, err
	}
	return normalizeChainRounds(chainId, objects)
}

// fetchObjects returns the decoded array at url, from cache when a fresh copy exists.
// Only bodies that decode successfully are cached.
func (s *GrantsStackSource) fetchObjects(ctx context.Context, endpoint string, url string) ([]common.Object, error) {
	if s.cache != nil {
		body, ok, err := s.cache.Get(ctx, url)
		if err != nil {
			log.Warn().Err(err).Str("url", url).Msg("Failed to read response cache")
		} else if ok {
			objects, err := decodeObjects(body)
			if err == nil {
				metrics.CacheHits.WithLabelValues(endpoint).Inc()
				return objects, nil
			}
			log.Warn().Err(err).Str("url", url).Msg("Discarding undecodable cached response")
		}
		metrics.CacheMisses.WithLabelValues(endpoint).Inc()
	}

	body, err := s.get(ctx, endpoint, url)
	if err != nil {
		metrics.SourceFetchFailures.WithLabelValues(endpoint).Inc()
		return nil, err
	}

	objects, err := decodeObjects(body)
	if err != nil {
		metrics.SourceFetchFailures.WithLabelValues(endpoint).Inc()
		return nil, &FetchError{URL: url, Err: fmt.Errorf("invalid response body: %w", err)}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, url, body); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("Failed to cache response")
		}
	}
	return objects, nil
}

func (s *GrantsStackSource) get(ctx context.Context, endpoint string, url string) ([]byte, error) {
	start := time.Now()
	defer func() {
		metrics.SourceFetchDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("url", url).Msg("Fetching indexer endpoint")
	resp, err := s.client.Do(req)
	if err != nil {
		metrics.SourceRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	metrics.SourceRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}
	return body, nil
}

func decodeObjects(body []byte) ([]common.Object, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var objects []common.Object
	if err := decoder.Decode(&objects); err != nil {
		return nil, err
	}
	return objects, nil
}

package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	config "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/common"
	"github.com/thirdweb-dev/grants-insight/internal/storage"
)

const applicationsBody = `[
	{
		"projectId": "0xp1",
		"status": "APPROVED",
		"amountUSD": 1234.5678,
		"votes": 12,
		"uniqueContributors": 10,
		"metadata": {"application": {"recipient": "0xAbC0000000000000000000000000000000000001", "project": {"title": "Clean Water", "description": "wells"}}}
	},
	{
		"projectId": "0xp2",
		"status": "PENDING",
		"amountUSD": 5,
		"votes": 1,
		"uniqueContributors": 1,
		"metadata": {"application": {"project": {"title": "No Recipient"}}}
	}
]`

const votesBody = `[
	{"id": "v1", "voter": "0xB0B0000000000000000000000000000000000001", "projectId": "0xp1", "blockNumber": 100, "amountUSD": "10.5", "token": "0x0000000000000000000000000000000000000000", "chainId": 1},
	{"id": "v2", "voter": "0xb0b0000000000000000000000000000000000001", "projectId": "0xp1", "blockNumber": 105, "amountUSD": 2}
]`

type testServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newTestServer(t *testing.T, routes map[string]string) *testServer {
	t.Helper()
	ts := &testServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.hits.Add(1)
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newTestSource(t *testing.T, url string) *GrantsStackSource {
	t.Helper()
	cache, err := storage.NewMemoryConnector(&config.MemoryConfig{}, time.Minute)
	require.NoError(t, err)
	return NewGrantsStackSource(&config.SourceConfig{URL: url + "/", Timeout: 5}, cache)
}

func TestGetRoundProjects(t *testing.T) {
	server := newTestServer(t, map[string]string{"/1/rounds/0xr1/applications.json": applicationsBody})
	src := newTestSource(t, server.URL)

	projects, err := src.GetRoundProjects(context.Background(), 1, "0xr1")
	require.NoError(t, err)
	require.Len(t, projects, 1, "applications without a recipient are dropped")

	p := projects[0]
	assert.Equal(t, "0xp1", p.ProjectId)
	assert.Equal(t, "Clean Water", p.Title)
	assert.Equal(t, "0xAbC0000000000000000000000000000000000001", p.GrantAddress)
	assert.Equal(t, common.ProjectStatusApproved, p.Status)
	assert.True(t, decimal.RequireFromString("1234.5678").Equal(p.AmountUSD))
	assert.Equal(t, uint64(12), p.Votes)
	assert.Equal(t, uint64(10), p.UniqueContributors)
	assert.Equal(t, "wells", p.Description)
}

func TestGetRoundVotes(t *testing.T) {
	server := newTestServer(t, map[string]string{"/10/rounds/0xr2/votes.json": votesBody})
	src := newTestSource(t, server.URL)

	votes, err := src.GetRoundVotes(context.Background(), 10, "0xr2")
	require.NoError(t, err)
	require.Len(t, votes, 2)

	assert.Equal(t, "v1", votes[0].Id)
	assert.Equal(t, uint64(100), votes[0].BlockNumber)
	assert.Equal(t, uint64(1), votes[0].ChainId)
	assert.True(t, decimal.RequireFromString("10.5").Equal(votes[0].AmountUSD))
	assert.Equal(t, votes[0].Voter, votes[1].Voter, "voter addresses are compared case-insensitively")
	assert.Equal(t, "", votes[1].Token)
	assert.Nil(t, votes[0].Timestamp)
}

func TestFetchFailureIsFetchError(t *testing.T) {
	server := newTestServer(t, map[string]string{})
	src := newTestSource(t, server.URL)

	_, err := src.GetRoundVotes(context.Background(), 1, "0xr1")
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	assert.Contains(t, fetchErr.URL, "/1/rounds/0xr1/votes.json")

	// failures are never cached
	_, err = src.GetRoundVotes(context.Background(), 1, "0xr1")
	require.Error(t, err)
	assert.Equal(t, int32(2), server.hits.Load())
}

func TestInvalidBodyIsFetchError(t *testing.T) {
	server := newTestServer(t, map[string]string{"/1/rounds/0xr1/votes.json": `<html>maintenance</html>`})
	src := newTestSource(t, server.URL)

	_, err := src.GetRoundVotes(context.Background(), 1, "0xr1")
	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
}

func TestCacheHitAvoidsRefetch(t *testing.T) {
	server := newTestServer(t, map[string]string{"/1/rounds/0xr1/applications.json": applicationsBody})
	src := newTestSource(t, server.URL)

	first, err := src.GetRoundProjects(context.Background(), 1, "0xr1")
	require.NoError(t, err)
	second, err := src.GetRoundProjects(context.Background(), 1, "0xr1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), server.hits.Load())
}

func TestMissingRequiredFieldAborts(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/1/rounds/0xr1/votes.json": `[{"id": "v1", "voter": "0xa", "projectId": "p", "blockNumber": 1}]`,
	})
	src := newTestSource(t, server.URL)

	_, err := src.GetRoundVotes(context.Background(), 1, "0xr1")
	var missing *common.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "vote", missing.Entity)
	assert.Equal(t, "amountUSD", missing.Field)
}

func TestGetPassportScores(t *testing.T) {
	server := newTestServer(t, map[string]string{"/passport_scores.json": `[
		{"address": "0xa", "last_score_timestamp": "2023-08-20T10:00:00.123456+00:00", "status": "DONE", "evidence": {"rawScore": "21.75"}},
		{"address": "0xb", "last_score_timestamp": "2023-08-21T10:00:00Z", "status": "DONE", "evidence": null},
		{"address": "0xc", "last_score_timestamp": "2023-08-21T10:00:00Z", "status": "ERROR"}
	]`})
	src := newTestSource(t, server.URL)

	passports, err := src.GetPassportScores(context.Background())
	require.NoError(t, err)
	require.Len(t, passports, 3)

	assert.True(t, decimal.RequireFromString("21.75").Equal(passports[0].RawScore))
	assert.Equal(t, time.Date(2023, 8, 20, 10, 0, 0, 123456000, time.UTC), passports[0].LastScoreTimestamp)
	assert.True(t, passports[1].RawScore.IsZero())
	assert.True(t, passports[2].RawScore.IsZero())
	assert.Equal(t, "ERROR", passports[2].Status)
}

func TestGetChainRounds(t *testing.T) {
	server := newTestServer(t, map[string]string{"/424/rounds.json": `[
		{"id": "0xr1", "amountUSD": 100, "votes": 4, "roundStartTime": "1692100800", "roundEndTime": 1693310400, "metadata": {"name": "Climate"}},
		{"id": "0xr2", "amountUSD": 0, "votes": 0, "roundStartTime": 1, "roundEndTime": 2, "metadata": null}
	]`})
	src := newTestSource(t, server.URL)

	rounds, err := src.GetChainRounds(context.Background(), 424)
	require.NoError(t, err)
	require.Len(t, rounds, 1)

	assert.Equal(t, "0xr1", rounds[0].RoundId)
	assert.Equal(t, uint64(424), rounds[0].ChainId)
	assert.Equal(t, "Climate", rounds[0].Name)
	assert.Equal(t, time.Unix(1692100800, 0).UTC(), rounds[0].RoundStartTime)
	assert.Equal(t, time.Unix(1693310400, 0).UTC(), rounds[0].RoundEndTime)
}

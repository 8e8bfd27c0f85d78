package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/grants-insight/internal/common"
	"github.com/thirdweb-dev/grants-insight/internal/pipeline"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func at(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func testSession() *pipeline.Session {
	return &pipeline.Session{
		Rounds: []common.Round{
			{RoundId: "R1", ChainId: 1, Name: "Climate", MatchingPool: d("1000")},
			{RoundId: "R2", ChainId: 10, Name: "OSS", MatchingPool: d("250.5")},
		},
		Projects: []common.Project{
			{ProjectId: "p1", Title: "Trees", RoundId: "R1", ChainId: 1, RoundName: "Climate", AmountUSD: d("100.25"), Votes: 3},
			{ProjectId: "p2", Title: "Solar", RoundId: "R1", ChainId: 1, RoundName: "Climate", AmountUSD: d("50"), Votes: 5},
			{ProjectId: "p1", Title: "Linter", RoundId: "R2", ChainId: 10, RoundName: "OSS", AmountUSD: d("400"), Votes: 2},
		},
		Votes: []common.Vote{
			{Id: "v1", Voter: "0xa", ProjectId: "p1", RoundId: "R1", ChainId: 1, TokenSymbol: "ETH", AmountUSD: d("10"), Timestamp: at("2023-08-15T12:10:00Z")},
			{Id: "v2", Voter: "0xb", ProjectId: "p2", RoundId: "R1", ChainId: 1, TokenSymbol: "DAI", AmountUSD: d("5"), Timestamp: at("2023-08-15T12:50:00Z")},
			{Id: "v3", Voter: "0xa", ProjectId: "p1", RoundId: "R2", ChainId: 10, TokenSymbol: "ETH", AmountUSD: d("2.5"), Timestamp: at("2023-08-15T15:01:00Z")},
			{Id: "v4", Voter: "0xc", ProjectId: "p9", RoundId: "R2", ChainId: 10, AmountUSD: d("1")},
		},
	}
}

func TestSummarizeOverview(t *testing.T) {
	s := testSession()
	overview := SummarizeOverview(s.Rounds, s.Projects, s.Votes)

	assert.True(t, d("1250.5").Equal(overview.MatchingPool))
	assert.True(t, d("550.25").Equal(overview.TotalDonated))
	assert.Equal(t, uint64(10), overview.TotalDonations)
	assert.Equal(t, 3, overview.UniqueDonors)
	assert.Equal(t, 2, overview.TotalRounds)

	empty := SummarizeOverview(nil, nil, nil)
	assert.True(t, empty.TotalDonated.IsZero())
	assert.Equal(t, 0, empty.UniqueDonors)
}

func TestDonationsByToken(t *testing.T) {
	byToken := DonationsByToken(testSession().Votes)
	require.Len(t, byToken, 2)
	assert.Equal(t, "DAI", byToken[0].TokenSymbol)
	assert.True(t, d("5").Equal(byToken[0].AmountUSD))
	assert.Equal(t, "ETH", byToken[1].TokenSymbol)
	assert.True(t, d("12.5").Equal(byToken[1].AmountUSD))

	assert.NotNil(t, DonationsByToken(nil))
	assert.Empty(t, DonationsByToken(nil))
}

func TestGroupByRound(t *testing.T) {
	projects := testSession().Projects

	donated := DonatedByRound(projects)
	require.Len(t, donated, 2)
	assert.Equal(t, "OSS", donated[0].RoundName)
	assert.True(t, d("150.25").Equal(donated[1].AmountUSD))

	contributions := ContributionsByRound(projects)
	require.Len(t, contributions, 2)
	assert.Equal(t, RoundCount{RoundName: "Climate", Votes: 8}, contributions[0])
	assert.Equal(t, RoundCount{RoundName: "OSS", Votes: 2}, contributions[1])
}

func TestHourlyContributions(t *testing.T) {
	votes := testSession().Votes
	// the same vote fetched twice counts once
	votes = append(votes, votes[0])

	buckets := HourlyContributions(votes)
	require.Len(t, buckets, 4)
	assert.Equal(t, HourlyBucket{Hour: *at("2023-08-15T12:00:00Z"), Contributions: 2}, buckets[0])
	assert.Equal(t, HourlyBucket{Hour: *at("2023-08-15T13:00:00Z"), Contributions: 0}, buckets[1])
	assert.Equal(t, HourlyBucket{Hour: *at("2023-08-15T14:00:00Z"), Contributions: 0}, buckets[2])
	assert.Equal(t, HourlyBucket{Hour: *at("2023-08-15T15:00:00Z"), Contributions: 1}, buckets[3])

	assert.Empty(t, HourlyContributions(nil))
	assert.NotNil(t, HourlyContributions(nil))
}

func TestFilterAndSummarizeRound(t *testing.T) {
	rounds, projects, votes := FilterRound(testSession(), 1, "R1")
	require.Len(t, rounds, 1)
	require.Len(t, projects, 2)
	require.Len(t, votes, 2)

	detail := SummarizeRound(rounds, projects, votes)
	assert.True(t, d("1000").Equal(detail.MatchingPool))
	assert.True(t, d("150.25").Equal(detail.TotalDonated))
	assert.Equal(t, uint64(8), detail.TotalDonations)
	assert.Equal(t, 2, detail.TotalProjects)
	assert.Equal(t, 2, detail.UniqueDonors)

	rounds, projects, votes = FilterRound(testSession(), 1, "R2")
	assert.Empty(t, rounds)
	assert.Empty(t, projects)
	assert.Empty(t, votes)
}

func TestProjectTable(t *testing.T) {
	projects := []common.Project{
		{Title: "A", Votes: 2, AmountUSD: d("1234.567")},
		{Title: "B", Votes: 1234, AmountUSD: d("0")},
		{Title: "C", Votes: 2, AmountUSD: d("1000000")},
	}
	rows := ProjectTable(projects)
	assert.Equal(t, []ProjectRow{
		{Title: "B", Votes: "1,234", AmountUSD: "$0.00"},
		{Title: "A", Votes: "2", AmountUSD: "$1,234.57"},
		{Title: "C", Votes: "2", AmountUSD: "$1,000,000.00"},
	}, rows)
	assert.Equal(t, "A", projects[0].Title, "input order is untouched")
}

func TestProjectTreemap(t *testing.T) {
	entries := ProjectTreemap(testSession().Projects)
	require.Len(t, entries, 3)
	assert.Equal(t, "Linter", entries[0].Title)
	assert.Equal(t, "Trees", entries[1].Title)
	assert.Equal(t, "Solar", entries[2].Title)
}

func TestVotesWithTitles(t *testing.T) {
	s := testSession()
	joined := VotesWithTitles(s.Votes, s.Projects)
	require.Len(t, joined, 4)
	assert.Equal(t, "Trees", joined[0].Title)
	assert.Equal(t, "Solar", joined[1].Title)
	// p1 in R2 is a different project than p1 in R1
	assert.Equal(t, "Linter", joined[2].Title)
	assert.Equal(t, "", joined[3].Title)
}

func TestLiveRounds(t *testing.T) {
	now := *at("2023-08-20T00:00:00Z")
	rounds := []common.ChainRound{
		{RoundId: "a", Votes: 5, RoundStartTime: *at("2023-08-15T00:00:00Z"), RoundEndTime: *at("2023-08-29T00:00:00Z")},
		{RoundId: "b", Votes: 0, RoundStartTime: *at("2023-08-15T00:00:00Z"), RoundEndTime: *at("2023-08-29T00:00:00Z")},
		{RoundId: "c", Votes: 50, RoundStartTime: *at("2023-08-01T00:00:00Z"), RoundEndTime: *at("2023-08-25T00:00:00Z")},
		{RoundId: "d", Votes: 70, RoundStartTime: *at("2023-07-01T00:00:00Z"), RoundEndTime: *at("2023-07-25T00:00:00Z")},
	}
	live := LiveRounds(rounds, now)
	require.Len(t, live, 2)
	assert.Equal(t, "c", live[0].RoundId)
	assert.Equal(t, "a", live[1].RoundId)
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$1,234.56", FormatUSD(d("1234.56")))
	assert.Equal(t, "$0.10", FormatUSD(d("0.1")))
	assert.Equal(t, "-$12.00", FormatUSD(d("-12")))
}

package report

import (
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/thirdweb-dev/grants-insight/internal/common"
	"github.com/thirdweb-dev/grants-insight/internal/pipeline"
)

type Overview struct {
	MatchingPool   decimal.Decimal `json:"matching_pool"`
	TotalDonated   decimal.Decimal `json:"total_donated"`
	TotalDonations uint64          `json:"total_donations"`
	UniqueDonors   int             `json:"unique_donors"`
	TotalRounds    int             `json:"total_rounds"`
}

type RoundDetail struct {
	MatchingPool   decimal.Decimal `json:"matching_pool"`
	TotalDonated   decimal.Decimal `json:"total_donated"`
	TotalDonations uint64          `json:"total_donations"`
	TotalProjects  int             `json:"total_projects"`
	UniqueDonors   int             `json:"unique_donors"`
}

type TokenAmount struct {
	TokenSymbol string          `json:"token_symbol"`
	AmountUSD   decimal.Decimal `json:"amount_usd"`
}

type RoundAmount struct {
	RoundName string          `json:"round_name"`
	AmountUSD decimal.Decimal `json:"amount_usd"`
}

type RoundCount struct {
	RoundName string `json:"round_name"`
	Votes     uint64 `json:"votes"`
}

type HourlyBucket struct {
	Hour          time.Time `json:"hour"`
	Contributions int       `json:"contributions"`
}

type TreemapEntry struct {
	Title     string          `json:"title"`
	AmountUSD decimal.Decimal `json:"amount_usd"`
}

// ProjectRow is a project formatted for display.
type ProjectRow struct {
	Title     string `json:"title"`
	Votes     string `json:"votes"`
	AmountUSD string `json:"amount_usd"`
}

type VoteWithTitle struct {
	common.Vote
	Title string `json:"title"`
}

func SummarizeOverview(rounds []common.Round, projects []common.Project, votes []common.Vote) Overview {
	roundIds := common.NewSet[string]()
	for _, p := range projects {
		roundIds.Add(p.RoundId)
	}
	return Overview{
		MatchingPool:   matchingPool(rounds),
		TotalDonated:   totalDonated(projects),
		TotalDonations: totalDonations(projects),
		UniqueDonors:   uniqueDonors(votes),
		TotalRounds:    roundIds.Size(),
	}
}

func SummarizeRound(rounds []common.Round, projects []common.Project, votes []common.Vote) RoundDetail {
	return RoundDetail{
		MatchingPool:   matchingPool(rounds),
		TotalDonated:   totalDonated(projects),
		TotalDonations: totalDonations(projects),
		TotalProjects:  len(projects),
		UniqueDonors:   uniqueDonors(votes),
	}
}

func matchingPool(rounds []common.Round) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range rounds {
		sum = sum.Add(r.MatchingPool)
	}
	return sum
}

func totalDonated(projects []common.Project) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range projects {
		sum = sum.Add(p.AmountUSD)
	}
	return sum
}

func totalDonations(projects []common.Project) uint64 {
	var sum uint64
	for _, p := range projects {
		sum += p.Votes
	}
	return sum
}

func uniqueDonors(votes []common.Vote) int {
	voters := common.NewSet[string]()
	for _, v := range votes {
		voters.Add(v.Voter)
	}
	return voters.Size()
}

// DonationsByToken sums vote amounts per token symbol, leaving out unmapped tokens.
func DonationsByToken(votes []common.Vote) []TokenAmount {
	sums := make(map[string]decimal.Decimal)
	for _, v := range votes {
		if v.TokenSymbol == "" {
			continue
		}
		sums[v.TokenSymbol] = sums[v.TokenSymbol].Add(v.AmountUSD)
	}
	result := make([]TokenAmount, 0, len(sums))
	for symbol, amount := range sums {
		result = append(result, TokenAmount{TokenSymbol: symbol, AmountUSD: amount})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TokenSymbol < result[j].TokenSymbol
	})
	return result
}

func DonatedByRound(projects []common.Project) []RoundAmount {
	sums := make(map[string]decimal.Decimal)
	for _, p := range projects {
		sums[p.RoundName] = sums[p.RoundName].Add(p.AmountUSD)
	}
	result := make([]RoundAmount, 0, len(sums))
	for name, amount := range sums {
		result = append(result, RoundAmount{RoundName: name, AmountUSD: amount})
	}
	sort.Slice(result, func(i, j int) bool {
		if c := result[i].AmountUSD.Cmp(result[j].AmountUSD); c != 0 {
			return c > 0
		}
		return result[i].RoundName < result[j].RoundName
	})
	return result
}

func ContributionsByRound(projects []common.Project) []RoundCount {
	sums := make(map[string]uint64)
	for _, p := range projects {
		sums[p.RoundName] += p.Votes
	}
	result := make([]RoundCount, 0, len(sums))
	for name, votes := range sums {
		result = append(result, RoundCount{RoundName: name, Votes: votes})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Votes != result[j].Votes {
			return result[i].Votes > result[j].Votes
		}
		return result[i].RoundName < result[j].RoundName
	})
	return result
}

// HourlyContributions counts distinct votes per UTC hour, with empty hours filled in
// between the first and last active hour. Votes without a timestamp are skipped.
func HourlyContributions(votes []common.Vote) []HourlyBucket {
	perHour := make(map[time.Time]*common.Set[common.RowKey])
	var first, last time.Time
	for _, v := range votes {
		if v.Timestamp == nil {
			continue
		}
		hour := v.Timestamp.UTC().Truncate(time.Hour)
		ids, ok := perHour[hour]
		if !ok {
			ids = common.NewSet[common.RowKey]()
			perHour[hour] = ids
		}
		ids.Add(v.Key())
		if first.IsZero() || hour.Before(first) {
			first = hour
		}
		if last.IsZero() || hour.After(last) {
			last = hour
		}
	}

	buckets := []HourlyBucket{}
	if len(perHour) == 0 {
		return buckets
	}
	for hour := first; !hour.After(last); hour = hour.Add(time.Hour) {
		count := 0
		if ids, ok := perHour[hour]; ok {
			count = ids.Size()
		}
		buckets = append(buckets, HourlyBucket{Hour: hour, Contributions: count})
	}
	return buckets
}

// FilterRound restricts a session's tables to a single round.
func FilterRound(session *pipeline.Session, chainId uint64, roundId string) ([]common.Round, []common.Project, []common.Vote) {
	rounds := []common.Round{}
	for _, r := range session.Rounds {
		if r.ChainId == chainId && r.RoundId == roundId {
			rounds = append(rounds, r)
		}
	}
	projects := []common.Project{}
	for _, p := range session.Projects {
		if p.ChainId == chainId && p.RoundId == roundId {
			projects = append(projects, p)
		}
	}
	votes := []common.Vote{}
	for _, v := range session.Votes {
		if v.ChainId == chainId && v.RoundId == roundId {
			votes = append(votes, v)
		}
	}
	return rounds, projects, votes
}

func ProjectTreemap(projects []common.Project) []TreemapEntry {
	entries := make([]TreemapEntry, 0, len(projects))
	for _, p := range projects {
		entries = append(entries, TreemapEntry{Title: p.Title, AmountUSD: p.AmountUSD})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AmountUSD.GreaterThan(entries[j].AmountUSD)
	})
	return entries
}

// ProjectTable orders projects by votes, most first, keeping input order among ties.
func ProjectTable(projects []common.Project) []ProjectRow {
	sorted := append([]common.Project{}, projects...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Votes > sorted[j].Votes
	})
	rows := make([]ProjectRow, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, ProjectRow{
			Title:     p.Title,
			Votes:     humanize.Comma(int64(p.Votes)),
			AmountUSD: FormatUSD(p.AmountUSD),
		})
	}
	return rows
}

// FormatUSD renders an amount as $1,234.56.
func FormatUSD(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")
	intPart, _ := new(big.Int).SetString(whole, 10)
	sign := ""
	if amount.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + "$" + humanize.BigComma(intPart) + "." + cents
}

func VotesWithTitles(votes []common.Vote, projects []common.Project) []VoteWithTitle {
	titles := make(map[common.RowKey]string, len(projects))
	for _, p := range projects {
		titles[p.Key()] = p.Title
	}
	result := make([]VoteWithTitle, 0, len(votes))
	for _, v := range votes {
		result = append(result, VoteWithTitle{Vote: v, Title: titles[v.ProjectKey()]})
	}
	return result
}

// LiveRounds returns rounds that are open at now and have received votes, most voted first.
func LiveRounds(rounds []common.ChainRound, now time.Time) []common.ChainRound {
	live := []common.ChainRound{}
	for _, r := range rounds {
		if r.IsLive(now) {
			live = append(live, r)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].Votes > live[j].Votes
	})
	return live
}

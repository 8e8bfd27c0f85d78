package handlers

import (
	"cmp"
	"slices"
	"strings"

	"github.com/thirdweb-dev/grants-insight/internal/common"
	"github.com/thirdweb-dev/grants-insight/internal/pipeline"
	"github.com/thirdweb-dev/grants-insight/internal/report"
)

type selection struct {
	Rounds   []common.Round
	Projects []common.Project
	Votes    []common.Vote
	Warnings []pipeline.Warning
}

// selectRows restricts the session to a chain and/or round. Zero values match everything.
func selectRows(session *pipeline.Session, chainId uint64, roundId string) selection {
	match := func(c uint64, r string) bool {
		return (chainId == 0 || c == chainId) && (roundId == "" || r == roundId)
	}
	if chainId != 0 && roundId != "" {
		rounds, projects, votes := report.FilterRound(session, chainId, roundId)
		return selection{Rounds: rounds, Projects: projects, Votes: votes, Warnings: selectWarnings(session.Warnings, match)}
	}

	s := selection{
		Rounds:   []common.Round{},
		Projects: []common.Project{},
		Votes:    []common.Vote{},
	}
	for _, r := range session.Rounds {
		if match(r.ChainId, r.RoundId) {
			s.Rounds = append(s.Rounds, r)
		}
	}
	for _, p := range session.Projects {
		if match(p.ChainId, p.RoundId) {
			s.Projects = append(s.Projects, p)
		}
	}
	for _, v := range session.Votes {
		if match(v.ChainId, v.RoundId) {
			s.Votes = append(s.Votes, v)
		}
	}
	s.Warnings = selectWarnings(session.Warnings, match)
	return s
}

func selectWarnings(warnings []pipeline.Warning, match func(uint64, string) bool) []pipeline.Warning {
	selected := []pipeline.Warning{}
	for _, w := range warnings {
		if match(w.ChainId, w.RoundId) {
			selected = append(selected, w)
		}
	}
	return selected
}

type comparator[T any] func(a, b T) int

// sortRows sorts in place by a validated column, leaving the order untouched when sortBy is empty.
func sortRows[T any](rows []T, comparators map[string]comparator[T], sortBy string, sortOrder string) {
	compare, ok := comparators[sortBy]
	if !ok {
		return
	}
	slices.SortStableFunc(rows, func(a, b T) int {
		if sortOrder == "desc" {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

func compareTimestamps(a, b *common.Vote) int {
	switch {
	case a.Timestamp == nil && b.Timestamp == nil:
		return 0
	case a.Timestamp == nil:
		return -1
	case b.Timestamp == nil:
		return 1
	}
	return a.Timestamp.Compare(*b.Timestamp)
}

var projectComparators = map[string]comparator[common.Project]{
	"chain_id":            func(a, b common.Project) int { return cmp.Compare(a.ChainId, b.ChainId) },
	"round_id":            func(a, b common.Project) int { return strings.Compare(a.RoundId, b.RoundId) },
	"round_name":          func(a, b common.Project) int { return strings.Compare(a.RoundName, b.RoundName) },
	"project_id":          func(a, b common.Project) int { return strings.Compare(a.ProjectId, b.ProjectId) },
	"title":               func(a, b common.Project) int { return strings.Compare(a.Title, b.Title) },
	"status":              func(a, b common.Project) int { return strings.Compare(string(a.Status), string(b.Status)) },
	"amount_usd":          func(a, b common.Project) int { return a.AmountUSD.Cmp(b.AmountUSD) },
	"votes":               func(a, b common.Project) int { return cmp.Compare(a.Votes, b.Votes) },
	"unique_contributors": func(a, b common.Project) int { return cmp.Compare(a.UniqueContributors, b.UniqueContributors) },
}

var voteComparators = map[string]comparator[report.VoteWithTitle]{
	"chain_id":     func(a, b report.VoteWithTitle) int { return cmp.Compare(a.ChainId, b.ChainId) },
	"round_id":     func(a, b report.VoteWithTitle) int { return strings.Compare(a.RoundId, b.RoundId) },
	"round_name":   func(a, b report.VoteWithTitle) int { return strings.Compare(a.RoundName, b.RoundName) },
	"id":           func(a, b report.VoteWithTitle) int { return strings.Compare(a.Id, b.Id) },
	"voter":        func(a, b report.VoteWithTitle) int { return strings.Compare(a.Voter, b.Voter) },
	"project_id":   func(a, b report.VoteWithTitle) int { return strings.Compare(a.ProjectId, b.ProjectId) },
	"title":        func(a, b report.VoteWithTitle) int { return strings.Compare(a.Title, b.Title) },
	"block_number": func(a, b report.VoteWithTitle) int { return cmp.Compare(a.BlockNumber, b.BlockNumber) },
	"token_symbol": func(a, b report.VoteWithTitle) int { return strings.Compare(a.TokenSymbol, b.TokenSymbol) },
	"amount_usd":   func(a, b report.VoteWithTitle) int { return a.AmountUSD.Cmp(b.AmountUSD) },
	"timestamp":    func(a, b report.VoteWithTitle) int { return compareTimestamps(&a.Vote, &b.Vote) },
}

var passportComparators = map[string]comparator[common.Passport]{
	"address":              func(a, b common.Passport) int { return strings.Compare(a.Address, b.Address) },
	"last_score_timestamp": func(a, b common.Passport) int { return a.LastScoreTimestamp.Compare(b.LastScoreTimestamp) },
	"status":               func(a, b common.Passport) int { return strings.Compare(a.Status, b.Status) },
	"raw_score":            func(a, b common.Passport) int { return a.RawScore.Cmp(b.RawScore) },
}

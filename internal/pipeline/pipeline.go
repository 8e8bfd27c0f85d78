package pipeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/thirdweb-dev/grants-insight/internal/common"
)

// Warning records a round table that could not be fetched.
type Warning struct {
	ChainId uint64 `json:"chain_id"`
	RoundId string `json:"round_id"`
	Table   string `json:"table"`
	Message string `json:"message"`
}

// RoundData is what was fetched for one configured round.
type RoundData struct {
	Round    common.Round
	Projects []common.Project
	Votes    []common.Vote
	Warnings []Warning
}

// Session is the enriched, read-only dataset of one refresh.
type Session struct {
	Id                  string
	GeneratedAt         time.Time
	Rounds              []common.Round
	Projects            []common.Project
	Votes               []common.Vote
	ChainStartingBlocks map[uint64]uint64
	StartingTime        time.Time
	Warnings            []Warning
}

// Build tags, concatenates and enriches per-round data in input order.
func Build(rounds []common.Round, data []RoundData) *Session {
	projects := []common.Project{}
	votes := []common.Vote{}
	warnings := []Warning{}

	for _, rd := range data {
		projects = append(projects, tagProjects(rd.Round, rd.Projects)...)
		warnings = append(warnings, rd.Warnings...)
	}
	for _, rd := range data {
		votes = append(votes, tagVotes(rd.Round, rd.Votes)...)
	}

	baselines := ChainStartingBlocks(votes)
	startingTime := StartingTime(rounds)
	for i := range votes {
		votes[i].TokenSymbol = common.TokenSymbol(votes[i].Token)
		baseline, ok := baselines[votes[i].ChainId]
		if !ok {
			continue
		}
		ts := common.BlockTimestamp(startingTime, votes[i].BlockNumber, baseline, votes[i].ChainId)
		votes[i].Timestamp = &ts
	}

	return &Session{
		Id:                  uuid.New().String(),
		GeneratedAt:         time.Now().UTC(),
		Rounds:              append([]common.Round{}, rounds...),
		Projects:            projects,
		Votes:               votes,
		ChainStartingBlocks: baselines,
		StartingTime:        startingTime,
		Warnings:            warnings,
	}
}

// tagProjects returns copies of projects labelled with the round they belong to.
func tagProjects(round common.Round, projects []common.Project) []common.Project {
	tagged := make([]common.Project, len(projects))
	for i, p := range projects {
		p.RoundId = round.RoundId
		p.ChainId = round.ChainId
		p.RoundName = round.Name
		tagged[i] = p
	}
	return tagged
}

func tagVotes(round common.Round, votes []common.Vote) []common.Vote {
	tagged := make([]common.Vote, len(votes))
	for i, v := range votes {
		v.RoundId = round.RoundId
		v.ChainId = round.ChainId
		v.RoundName = round.Name
		tagged[i] = v
	}
	return tagged
}

// ChainStartingBlocks returns the lowest observed block number per chain.
func ChainStartingBlocks(votes []common.Vote) map[uint64]uint64 {
	baselines := make(map[uint64]uint64)
	for _, v := range votes {
		if current, ok := baselines[v.ChainId]; !ok || v.BlockNumber < current {
			baselines[v.ChainId] = v.BlockNumber
		}
	}
	return baselines
}

// StartingTime is the earliest configured round start, or the zero time without rounds.
func StartingTime(rounds []common.Round) time.Time {
	var earliest time.Time
	for i, r := range rounds {
		if i == 0 || r.StartingTime.Before(earliest) {
			earliest = r.StartingTime
		}
	}
	return earliest
}

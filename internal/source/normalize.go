package source

import (
	"strings"
	"time"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/thirdweb-dev/grants-insight/internal/common"
)

// normalizeProjects keeps only applications that carry a title and a recipient.
func normalizeProjects(objects []common.Object) ([]common.Project, error) {
	projects := make([]common.Project, 0, len(objects))
	for _, obj := range objects {
		title, ok := common.LookupString(obj, "metadata", "application", "project", "title")
		if !ok {
			continue
		}
		recipient, ok := common.LookupString(obj, "metadata", "application", "recipient")
		if !ok {
			continue
		}

		projectId, err := common.RequireString("project", obj, "projectId")
		if err != nil {
			return nil, err
		}
		status, err := common.RequireString("project", obj, "status")
		if err != nil {
			return nil, err
		}
		amountUSD, err := common.RequireDecimal("project", obj, "amountUSD")
		if err != nil {
			return nil, err
		}
		votes, err := common.RequireUint("project", obj, "votes")
		if err != nil {
			return nil, err
		}
		uniqueContributors, err := common.RequireUint("project", obj, "uniqueContributors")
		if err != nil {
			return nil, err
		}

		projects = append(projects, common.Project{
			ProjectId:          projectId,
			Title:              title,
			GrantAddress:       recipient,
			Status:             common.ProjectStatus(status),
			AmountUSD:          amountUSD,
			Votes:              votes,
			UniqueContributors: uniqueContributors,
			Description:        common.OptionalString(obj, "metadata", "application", "project", "description"),
		})
	}
	return projects, nil
}

func normalizeVotes(objects []common.Object) ([]common.Vote, error) {
	votes := make([]common.Vote, 0, len(objects))
	for _, obj := range objects {
		id, err := common.RequireString("vote", obj, "id")
		if err != nil {
			return nil, err
		}
		voter, err := common.RequireString("vote", obj, "voter")
		if err != nil {
			return nil, err
		}
		projectId, err := common.RequireString("vote", obj, "projectId")
		if err != nil {
			return nil, err
		}
		blockNumber, err := common.RequireUint("vote", obj, "blockNumber")
		if err != nil {
			return nil, err
		}
		amountUSD, err := common.RequireDecimal("vote", obj, "amountUSD")
		if err != nil {
			return nil, err
		}

		chainId := common.OptionalDecimal(obj, "chainId")
		if chainId.IsZero() {
			chainId = common.OptionalDecimal(obj, "chain_id")
		}

		votes = append(votes, common.Vote{
			Id:          id,
			Voter:       normalizeAddress(voter),
			ProjectId:   projectId,
			ChainId:     uint64(chainId.IntPart()),
			BlockNumber: blockNumber,
			Token:       common.OptionalString(obj, "token"),
			AmountUSD:   amountUSD,
		})
	}
	return votes, nil
}

func normalizePassports(objects []common.Object) ([]common.Passport, error) {
	passports := make([]common.Passport, 0, len(objects))
	for _, obj := range objects {
		address, err := common.RequireString("passport", obj, "address")
		if err != nil {
			return nil, err
		}
		status, err := common.RequireString("passport", obj, "status")
		if err != nil {
			return nil, err
		}
		rawTimestamp, err := common.RequireString("passport", obj, "last_score_timestamp")
		if err != nil {
			return nil, err
		}
		lastScoreTimestamp, err := parseTimestamp(rawTimestamp)
		if err != nil {
			return nil, &common.InvalidFieldError{Entity: "passport", Field: "last_score_timestamp", Value: rawTimestamp}
		}

		passports = append(passports, common.Passport{
			Address:            normalizeAddress(address),
			LastScoreTimestamp: lastScoreTimestamp,
			Status:             status,
			RawScore:           common.OptionalDecimal(obj, "evidence", "rawScore"),
		})
	}
	return passports, nil
}

// normalizeChainRounds skips rounds whose metadata has not been published.
func normalizeChainRounds(chainId uint64, objects []common.Object) ([]common.ChainRound, error) {
	rounds := make([]common.ChainRound, 0, len(objects))
	for _, obj := range objects {
		if _, ok := common.Lookup(obj, "metadata"); !ok {
			continue
		}

		id, err := common.RequireString("round", obj, "id")
		if err != nil {
			return nil, err
		}
		amountUSD, err := common.RequireDecimal("round", obj, "amountUSD")
		if err != nil {
			return nil, err
		}
		votes, err := common.RequireUint("round", obj, "votes")
		if err != nil {
			return nil, err
		}
		startTime, err := common.RequireUint("round", obj, "roundStartTime")
		if err != nil {
			return nil, err
		}
		endTime, err := common.RequireUint("round", obj, "roundEndTime")
		if err != nil {
			return nil, err
		}

		rounds = append(rounds, common.ChainRound{
			RoundId:        id,
			ChainId:        chainId,
			Name:           common.OptionalString(obj, "metadata", "name"),
			AmountUSD:      amountUSD,
			Votes:          votes,
			RoundStartTime: time.Unix(int64(startTime), 0).UTC(),
			RoundEndTime:   time.Unix(int64(endTime), 0).UTC(),
		})
	}
	return rounds, nil
}

// normalizeAddress lowercases hex addresses and leaves anything else untouched.
func normalizeAddress(address string) string {
	if !gethCommon.IsHexAddress(address) {
		return address
	}
	return strings.ToLower(gethCommon.HexToAddress(address).Hex())
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07:00",
	"2006-01-02 15:04:05",
}

func parseTimestamp(value string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		t, err = time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

package orchestrator

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	config "github.com/thirdweb-dev/grants-insight/configs"
	"github.com/thirdweb-dev/grants-insight/internal/common"
)

var roundsFileColumns = []string{"program", "round_id", "chain_id", "round_name", "matching_pool", "starting_time"}

var startingTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// LoadRounds returns the configured rounds of the dashboard program, in configuration order.
// Inline rounds take precedence over the rounds file.
func LoadRounds(cfg *config.DashboardConfig) ([]common.Round, error) {
	var rounds []common.Round
	if len(cfg.Rounds) > 0 {
		for i, rc := range cfg.Rounds {
			round, err := roundFromConfig(rc)
			if err != nil {
				return nil, fmt.Errorf("dashboard.rounds[%d]: %w", i, err)
			}
			rounds = append(rounds, round)
		}
	} else if cfg.RoundsFile != "" {
		file, err := os.Open(cfg.RoundsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open rounds file: %w", err)
		}
		defer file.Close()
		rounds, err = ReadRoundsCSV(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read rounds file %s: %w", cfg.RoundsFile, err)
		}
	}

	return FilterProgram(rounds, cfg.Program), nil
}

// FilterProgram keeps rounds of program. An empty program keeps everything.
func FilterProgram(rounds []common.Round, program string) []common.Round {
	filtered := []common.Round{}
	for _, r := range rounds {
		if program == "" || r.Program == program {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func roundFromConfig(rc config.RoundConfig) (common.Round, error) {
	startingTime, err := parseStartingTime(rc.StartingTime)
	if err != nil {
		return common.Round{}, err
	}
	if rc.RoundId == "" {
		return common.Round{}, errors.New("round id is required")
	}
	return common.Round{
		Program:      rc.Program,
		RoundId:      rc.RoundId,
		ChainId:      rc.ChainId,
		Name:         rc.RoundName,
		MatchingPool: decimal.NewFromFloat(rc.MatchingPool),
		StartingTime: startingTime,
	}, nil
}

// ReadRoundsCSV parses a rounds table with a header row naming at least
// program, round_id, chain_id, round_name, matching_pool and starting_time.
func ReadRoundsCSV(r io.Reader) ([]common.Round, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, column := range header {
		index[strings.TrimSpace(strings.ToLower(column))] = i
	}
	for _, column := range roundsFileColumns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("missing column %q", column)
		}
	}

	rounds := []common.Round{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		chainId, err := strconv.ParseUint(strings.TrimSpace(record[index["chain_id"]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid chain_id: %w", line, err)
		}
		matchingPool := decimal.Zero
		if raw := strings.TrimSpace(record[index["matching_pool"]]); raw != "" {
			matchingPool, err = decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid matching_pool: %w", line, err)
			}
		}
		startingTime, err := parseStartingTime(record[index["starting_time"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rounds = append(rounds, common.Round{
			Program:      strings.TrimSpace(record[index["program"]]),
			RoundId:      strings.TrimSpace(record[index["round_id"]]),
			ChainId:      chainId,
			Name:         strings.TrimSpace(record[index["round_name"]]),
			MatchingPool: matchingPool,
			StartingTime: startingTime,
		})
	}
	return rounds, nil
}

func parseStartingTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range startingTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid starting_time %q", value)
}

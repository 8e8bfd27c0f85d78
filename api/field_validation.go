package api

import (
	"fmt"
	"sort"
	"strings"
)

// EntityColumns defines the sortable columns for each entity type
var EntityColumns = map[string][]string{
	"projects": {
		"chain_id", "round_id", "round_name", "project_id", "title", "status",
		"amount_usd", "votes", "unique_contributors",
	},
	"votes": {
		"chain_id", "round_id", "round_name", "id", "voter", "project_id", "title",
		"block_number", "token_symbol", "amount_usd", "timestamp",
	},
	"passports": {
		"address", "last_score_timestamp", "status", "raw_score",
	},
}

// ValidateSortBy checks that sortBy is a column of entity. An empty sortBy is always valid.
func ValidateSortBy(entity string, sortBy string) error {
	validColumns, exists := EntityColumns[entity]
	if !exists {
		return fmt.Errorf("unknown entity: %s", entity)
	}
	if sortBy == "" {
		return nil
	}
	for _, col := range validColumns {
		if col == sortBy {
			return nil
		}
	}
	return fmt.Errorf("invalid sort_by field '%s' for entity '%s'. Valid fields are: %s",
		sortBy, entity, strings.Join(getValidFieldsList(validColumns), ", "))
}

// getValidFieldsList returns the columns sorted for consistent error messages
func getValidFieldsList(columns []string) []string {
	fields := append([]string{}, columns...)
	sort.Strings(fields)
	return fields
}

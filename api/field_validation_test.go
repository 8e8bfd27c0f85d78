package api

import (
	"strings"
	"testing"
)

func TestValidateSortBy(t *testing.T) {
	tests := []struct {
		name    string
		entity  string
		sortBy  string
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid projects field",
			entity: "projects",
			sortBy: "amount_usd",
		},
		{
			name:   "valid votes field",
			entity: "votes",
			sortBy: "timestamp",
		},
		{
			name:   "empty sort by",
			entity: "passports",
			sortBy: "",
		},
		{
			name:    "invalid field",
			entity:  "projects",
			sortBy:  "voter",
			wantErr: true,
			errMsg:  "invalid sort_by field 'voter' for entity 'projects'",
		},
		{
			name:    "unknown entity",
			entity:  "blocks",
			sortBy:  "block_number",
			wantErr: true,
			errMsg:  "unknown entity: blocks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSortBy(tt.entity, tt.sortBy)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateSortBy() expected error but got none")
					return
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateSortBy() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateSortBy() unexpected error = %v", err)
				}
			}
		})
	}
}

func TestEntityColumnsAreUnique(t *testing.T) {
	for entity, columns := range EntityColumns {
		seen := make(map[string]bool)
		for _, col := range columns {
			if seen[col] {
				t.Errorf("entity %s lists column %s twice", entity, col)
			}
			seen[col] = true
		}
	}
}

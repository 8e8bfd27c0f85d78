package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSymbol(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"0x0000000000000000000000000000000000000000", "ETH"},
		{"0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1", "DAI"},
		{"0xda10009cbd5d07dd0cecc66161fc93d7c9000da1", "DAI"},
		{"0x6B175474E89094C44Da98b954EedeAC495271d0F", ""},
		{"", ""},
		{"ETH", ""},
		{"0xDA10", ""},
		{"DA10009cBd5D07dd0CeCc66161FC93D7c9000da1", ""},
		{"0XDA10009cBd5D07dd0CeCc66161FC93D7c9000da1", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TokenSymbol(tt.token), tt.token)
	}
}

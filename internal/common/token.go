package common

import (
	"strings"

	gethCommon "github.com/ethereum/go-ethereum/common"
)

var tokenSymbols = map[gethCommon.Address]string{
	gethCommon.HexToAddress("0x0000000000000000000000000000000000000000"): "ETH",
	gethCommon.HexToAddress("0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1"): "DAI",
}

// TokenSymbol maps a donation token contract address to its symbol.
// Unknown or malformed addresses, including ones without the 0x prefix, map to the empty string.
func TokenSymbol(token string) string {
	if !strings.HasPrefix(token, "0x") || !gethCommon.IsHexAddress(token) {
		return ""
	}
	return tokenSymbols[gethCommon.HexToAddress(token)]
}

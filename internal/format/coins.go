package format

import (
	"fmt"
)

// Coin denominations in copper
const (
	CopperPerSilver = 100
	CopperPerGold   = 10000
)

// FormatCoins renders a copper amount as "12g 34s 56c". Negative
// amounts keep their sign on the leading denomination.
func FormatCoins(coins int) string {
	negative := coins < 0
	if negative {
		coins = -coins
	}

	gold := coins / CopperPerGold
	silver := (coins % CopperPerGold) / CopperPerSilver
	copper := coins % CopperPerSilver

	formatted := fmt.Sprintf("%dg %ds %dc", gold, silver, copper)
	if negative {
		return "-" + formatted
	}
	return formatted
}

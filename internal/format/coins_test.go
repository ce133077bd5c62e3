package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCoins(t *testing.T) {
	tests := []struct {
		name     string
		coins    int
		expected string
	}{
		{"mixed denominations", 123456, "12g 34s 56c"},
		{"zero", 0, "0g 0s 0c"},
		{"copper only", 99, "0g 0s 99c"},
		{"silver boundary", 100, "0g 1s 0c"},
		{"gold boundary", 10000, "1g 0s 0c"},
		{"negative", -123456, "-12g 34s 56c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCoins(tt.coins))
		})
	}
}

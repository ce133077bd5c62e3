package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMOTD = `Welcome to the guild!
Discord: https://discord.gg/abc123
Week 14 01/06 - 01/12
Monday 01/06
8:00 PM Fractals
Tuesday 01/07
7:30 Raids
Random chatter that is not an event
`

func TestParseMOTD(t *testing.T) {
	parsed := ParseMOTD(sampleMOTD)

	assert.Equal(t, "https://discord.gg/abc123", parsed.DiscordURL)
	assert.Equal(t, "01/06 - 01/12", parsed.WeekRange)
	assert.Equal(t, sampleMOTD, parsed.FullMOTD)

	require.Len(t, parsed.Schedule, 2)
	assert.Equal(t, "Monday", parsed.Schedule[0].Day)
	assert.Equal(t, "8:00 PM", parsed.Schedule[0].Time)
	assert.Equal(t, "Fractals", parsed.Schedule[0].Event)
	assert.Equal(t, "Tuesday", parsed.Schedule[1].Day)
	assert.Equal(t, "7:30", parsed.Schedule[1].Time)
	assert.Equal(t, "Raids", parsed.Schedule[1].Event)
}

func TestParseMOTD_NoDiscordLine(t *testing.T) {
	parsed := ParseMOTD("Just a plain message of the day")

	assert.Empty(t, parsed.DiscordURL)
	assert.Empty(t, parsed.WeekRange)
	assert.Empty(t, parsed.Schedule)
}

func TestParseMOTD_EmptyInput(t *testing.T) {
	parsed := ParseMOTD("")

	assert.Empty(t, parsed.DiscordURL)
	assert.Empty(t, parsed.Schedule)
	assert.Equal(t, "", parsed.FullMOTD)
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"8:00 PM", "8:00 PM"},
		{"10:30 AM", "10:30 AM"},
		{"7:30", "7:30 PM"},
		{"12:00", "12:00"},
		{"not a time", "not a time"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatTime(tt.input), "input %q", tt.input)
	}
}

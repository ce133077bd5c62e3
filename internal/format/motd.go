package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"dashboard/internal/models"
)

var (
	discordRe  = regexp.MustCompile(`Discord:\s*(https://discord\.gg/[a-zA-Z0-9]+)`)
	weekRe     = regexp.MustCompile(`Week \d+\s+(\d{2}/\d{2}\s*-\s*\d{2}/\d{2})`)
	dayRe      = regexp.MustCompile(`^(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\s+(\d{2}/\d{2})`)
	eventRe    = regexp.MustCompile(`(\d{1,2}:\d{2}\s*(?:AM|PM)?)\s+(.*)`)
	noMeridiem = regexp.MustCompile(`AM|PM`)
)

// ParseMOTD extracts the structured pieces of a guild's message of the
// day: an optional Discord invite, an optional week range and the
// weekly event schedule. Parsing is best effort; sections that do not
// match are simply absent from the result.
func ParseMOTD(motd string) *models.ParsedMOTD {
	result := &models.ParsedMOTD{
		Schedule: []models.ScheduledEvent{},
		FullMOTD: motd,
	}

	if m := discordRe.FindStringSubmatch(motd); m != nil {
		result.DiscordURL = m[1]
	}
	if m := weekRe.FindStringSubmatch(motd); m != nil {
		result.WeekRange = m[1]
	}

	var currentDay string
	for _, line := range strings.Split(motd, "\n") {
		if m := dayRe.FindStringSubmatch(line); m != nil {
			currentDay = m[1]
			continue
		}
		if currentDay == "" {
			continue
		}
		if m := eventRe.FindStringSubmatch(line); m != nil {
			result.Schedule = append(result.Schedule, models.ScheduledEvent{
				Day:   currentDay,
				Time:  m[1],
				Event: strings.TrimSpace(m[2]),
			})
		}
	}

	return result
}

// FormatTime normalizes a schedule time for display. Bare times
// without AM/PM are guild evening events, so they are assumed PM.
func FormatTime(t string) string {
	if noMeridiem.MatchString(t) {
		return t
	}

	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return t
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return t
	}
	if hour < 12 {
		return fmt.Sprintf("%d:%s PM", hour, strings.TrimSpace(parts[1]))
	}
	return t
}

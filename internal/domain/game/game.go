package game

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// ScorePlaceholder is rendered when a game has no score to show yet.
const ScorePlaceholder = "-"

// Game is one scoreboard event from the perspective of the matched team.
type Game struct {
	EventID       string
	Team          string
	TeamScore     string
	Opponent      string
	OpponentScore string
	StatusDetail  string
	Status        Status
	Kickoff       time.Time
	Venue         string
}

var easternOnce = sync.OnceValue(func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
})

// Eastern returns the US Eastern location all kickoff times are shown in.
func Eastern() *time.Location {
	return easternOnce()
}

var kickoffZoneLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

var kickoffNaiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseKickoff parses an ESPN event date and converts it to US Eastern.
// ESPN sends minute-precision timestamps with a trailing Z on the
// scoreboard feed; timestamps with no zone at all are taken as UTC.
func ParseKickoff(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("kickoff time is empty")
	}

	for _, layout := range kickoffZoneLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.In(Eastern()), nil
		}
	}
	for _, layout := range kickoffNaiveLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return parsed.In(Eastern()), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized kickoff time %q", raw)
}

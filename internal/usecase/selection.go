package usecase

import (
	"sort"
	"time"

	"github.com/checkball/checkball/internal/domain/game"
)

// selectPrimaryAndNext picks the game to feature on the dashboard and the
// upcoming game to preview. Live games win outright, then a game that
// finished today (Eastern), then the most recent final, then the earliest
// upcoming game.
func selectPrimaryAndNext(games []game.Game, now time.Time) (primary, next *game.Game) {
	if len(games) == 0 {
		return nil, nil
	}

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)

	var completed, inProgress, upcoming []game.Game
	for _, g := range games {
		switch {
		case g.Status.Completed():
			completed = append(completed, g)
		case g.Status.Live():
			inProgress = append(inProgress, g)
		default:
			upcoming = append(upcoming, g)
		}
	}

	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Kickoff.After(completed[j].Kickoff)
	})
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Kickoff.Before(upcoming[j].Kickoff)
	})

	switch {
	case len(inProgress) > 0:
		primary = &inProgress[0]
		if len(upcoming) > 0 {
			next = &upcoming[0]
		}
	case len(completed) > 0:
		primary = &completed[0]
		for i := range completed {
			kickoff := completed[i].Kickoff
			if !kickoff.Before(todayStart) && kickoff.Before(todayEnd) {
				primary = &completed[i]
				break
			}
		}
		if len(upcoming) > 0 {
			next = &upcoming[0]
		}
	case len(upcoming) > 0:
		primary = &upcoming[0]
		if len(upcoming) > 1 {
			next = &upcoming[1]
		}
	}

	if primary == nil {
		sorted := make([]game.Game, len(games))
		copy(sorted, games)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Kickoff.After(sorted[j].Kickoff)
		})
		primary = &sorted[0]
	}

	return primary, next
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/checkball/checkball/internal/domain/game"
	"github.com/checkball/checkball/internal/domain/sport"
	"github.com/checkball/checkball/internal/domain/team"
	"github.com/checkball/checkball/internal/platform/logging"
)

type DetailsService struct {
	provider GameDataProvider
	logger   *logging.Logger
	now      func() time.Time
}

func NewDetailsService(provider GameDataProvider, logger *logging.Logger) *DetailsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DetailsService{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// GetGameDetails locates the team's most relevant game in the details
// window and returns the full summary breakdown for it.
func (s *DetailsService) GetGameDetails(ctx context.Context, sportKey, teamName string) (game.Details, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DetailsService.GetGameDetails")
	defer span.End()

	sp, err := sport.Parse(sportKey)
	if err != nil {
		return game.Details{}, fmt.Errorf("%w: %s", ErrUnsupportedSport, strings.TrimSpace(sportKey))
	}
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return game.Details{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	eventID, err := s.findTeamEvent(ctx, sp, teamName)
	if err != nil {
		return game.Details{}, err
	}

	payload, err := s.provider.FetchSummary(ctx, sp.ESPNPath, eventID)
	if err != nil {
		return game.Details{}, fmt.Errorf("fetch summary event=%s: %w", eventID, err)
	}

	return parseDetails(payload, sp), nil
}

// findTeamEvent scans the details window day by day and returns the first
// event that involves the team. Days that fail to fetch are skipped.
func (s *DetailsService) findTeamEvent(ctx context.Context, sp sport.Sport, teamName string) (string, error) {
	now := s.now().In(game.Eastern())

	for _, offset := range detailWindowOffsets {
		day := now.AddDate(0, 0, offset)

		payload, err := s.provider.FetchScoreboard(ctx, sp.ESPNPath, day)
		if err != nil {
			s.logger.WarnContext(ctx, "scoreboard day fetch failed",
				"sport", sp.Key,
				"date", day.Format("20060102"),
				"error", err,
			)
			continue
		}

		for _, rawEvent := range getArray(payload, "events") {
			event := asMap(rawEvent)
			if event == nil {
				continue
			}
			competitors := getArray(firstMap(getArray(event, "competitions")), "competitors")
			for _, rawSide := range competitors {
				displayName := getString(getMap(asMap(rawSide), "team"), "displayName")
				if displayName != "" && team.Match(teamName, displayName) {
					if eventID := getString(event, "id"); eventID != "" {
						return eventID, nil
					}
				}
			}
		}
	}

	return "", fmt.Errorf("%w for %s", ErrNoGamesFound, teamName)
}

// parseDetails shapes a summary payload into the details model. Missing
// sections come back empty rather than failing the whole response.
func parseDetails(payload map[string]any, sp sport.Sport) game.Details {
	header := getMap(payload, "header")
	competition := firstMap(getArray(header, "competitions"))
	competitors := getArray(competition, "competitors")

	var home, away map[string]any
	for _, rawSide := range competitors {
		side := asMap(rawSide)
		switch getString(side, "homeAway") {
		case "home":
			home = side
		case "away":
			away = side
		}
	}

	status := getMap(competition, "status")
	statusType := getMap(status, "type")
	venue := getMap(competition, "venue")

	details := game.Details{
		HomeTeam: parseTeamSide(home),
		AwayTeam: parseTeamSide(away),
		Status: game.DetailStatus{
			Display:   getStringDefault(statusType, "detail", "Unknown"),
			State:     getStringDefault(statusType, "name", "STATUS_SCHEDULED"),
			Period:    getInt(status, "period"),
			Clock:     getString(status, "displayClock"),
			Completed: getBool(statusType, "completed"),
		},
		Venue: game.Venue{
			Name:  getStringDefault(venue, "fullName", "TBD"),
			City:  getString(getMap(venue, "address"), "city"),
			State: getString(getMap(venue, "address"), "state"),
		},
		Date:           getString(competition, "date"),
		BoxScore:       parseBoxScore(getMap(payload, "boxscore")),
		TeamStats:      parseTeamStats(getMap(payload, "boxscore")),
		Leaders:        extractLeaders(payload, sp),
		ScoringSummary: parseScoringSummary(payload),
	}

	return details
}

func parseTeamSide(side map[string]any) game.TeamSide {
	teamInfo := getMap(side, "team")
	return game.TeamSide{
		Name:      getStringDefault(teamInfo, "displayName", "Unknown"),
		ShortName: getString(teamInfo, "abbreviation"),
		Score:     getStringDefault(side, "score", "0"),
		Logo:      getString(teamInfo, "logo"),
	}
}

func parseBoxScore(boxscore map[string]any) []game.TeamBoxScore {
	teams := getArray(boxscore, "teams")
	if len(teams) == 0 {
		return nil
	}

	out := make([]game.TeamBoxScore, 0, len(teams))
	for _, rawTeam := range teams {
		teamData := asMap(rawTeam)
		if teamData == nil {
			continue
		}
		teamInfo := getMap(teamData, "team")

		entry := game.TeamBoxScore{
			TeamName:   getStringDefault(teamInfo, "displayName", "Unknown"),
			TeamAbbr:   getString(teamInfo, "abbreviation"),
			Statistics: []game.StatLine{},
		}
		for _, rawStat := range getArray(teamData, "statistics") {
			stat := asMap(rawStat)
			if stat == nil {
				continue
			}
			entry.Statistics = append(entry.Statistics, game.StatLine{
				Name:        getString(stat, "name"),
				DisplayName: getString(stat, "displayName"),
				Value:       getStringDefault(stat, "displayValue", "0"),
			})
		}

		out = append(out, entry)
	}

	return out
}

func parseTeamStats(boxscore map[string]any) map[string]map[string]string {
	out := make(map[string]map[string]string)

	for _, rawTeam := range getArray(boxscore, "teams") {
		teamData := asMap(rawTeam)
		if teamData == nil {
			continue
		}
		teamName := getString(getMap(teamData, "team"), "displayName")
		if teamName == "" {
			continue
		}

		stats := make(map[string]string)
		for _, rawStat := range getArray(teamData, "statistics") {
			stat := asMap(rawStat)
			if stat == nil {
				continue
			}
			name := firstNonEmpty(getString(stat, "displayName"), getString(stat, "name"))
			if name == "" {
				continue
			}
			stats[name] = getStringDefault(stat, "displayValue", "0")
		}

		out[teamName] = stats
	}

	return out
}

func parseScoringSummary(payload map[string]any) []game.ScoringPlay {
	plays := getArray(payload, "scoringPlays")
	out := make([]game.ScoringPlay, 0, len(plays))

	for _, rawPlay := range plays {
		play := asMap(rawPlay)
		if play == nil {
			continue
		}
		out = append(out, game.ScoringPlay{
			Period:      getString(getMap(play, "period"), "displayValue"),
			Clock:       getString(getMap(play, "clock"), "displayValue"),
			Team:        getString(getMap(play, "team"), "abbreviation"),
			Description: getString(play, "text"),
			ScoreValue:  getInt(play, "scoreValue"),
		})
	}

	return out
}

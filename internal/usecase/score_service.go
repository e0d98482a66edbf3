package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/checkball/checkball/internal/domain/game"
	"github.com/checkball/checkball/internal/domain/sport"
	"github.com/checkball/checkball/internal/domain/team"
	"github.com/checkball/checkball/internal/platform/logging"
)

// GameDataProvider fetches raw scoreboard and summary payloads.
type GameDataProvider interface {
	FetchScoreboard(ctx context.Context, leaguePath string, day time.Time) (map[string]any, error)
	FetchSummary(ctx context.Context, leaguePath, eventID string) (map[string]any, error)
}

// Day offsets scanned around today. The scores window leans forward so an
// idle dashboard still previews the next few days; the details window is
// centered because the modal is mostly opened for games already played.
var (
	scoreWindowOffsets  = []int{-1, 0, 1, 2, 3}
	detailWindowOffsets = []int{-2, -1, 0, 1, 2}
)

const clockFormat = "15:04"

// NextGame previews the upcoming game attached to a score snapshot.
type NextGame struct {
	Opponent string `json:"opponent"`
	GameDate string `json:"game_date"`
	Venue    string `json:"venue"`
}

// ScoreSnapshot is the dashboard widget payload for one team.
type ScoreSnapshot struct {
	Team          string    `json:"team"`
	TeamScore     string    `json:"team_score"`
	Opponent      string    `json:"opponent"`
	OpponentScore string    `json:"opponent_score"`
	Status        string    `json:"status"`
	StatusType    string    `json:"status_type,omitempty"`
	GameDate      string    `json:"game_date_iso,omitempty"`
	Venue         string    `json:"venue"`
	LastUpdated   string    `json:"last_updated"`
	NextGame      *NextGame `json:"next_game"`
}

type ScoreService struct {
	provider GameDataProvider
	logger   *logging.Logger
	now      func() time.Time
}

func NewScoreService(provider GameDataProvider, logger *logging.Logger) *ScoreService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoreService{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// ListSports returns the supported league keys.
func (s *ScoreService) ListSports() []string {
	return sport.Keys()
}

// ListTeams returns the static roster for a league.
func (s *ScoreService) ListTeams(sportKey string) ([]string, error) {
	sp, err := sport.Parse(sportKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSport, strings.TrimSpace(sportKey))
	}
	return sport.Teams(sp.Key), nil
}

// GetScores fetches the team's games across the scores window and shapes
// the primary game plus an optional next-game preview. A team with no
// games anywhere in the window gets a placeholder snapshot, not an error.
func (s *ScoreService) GetScores(ctx context.Context, sportKey, teamName string) (ScoreSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.GetScores")
	defer span.End()

	sp, err := sport.Parse(sportKey)
	if err != nil {
		return ScoreSnapshot{}, fmt.Errorf("%w: %s", ErrUnsupportedSport, strings.TrimSpace(sportKey))
	}
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return ScoreSnapshot{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	now := s.now().In(game.Eastern())
	games := s.collectTeamGames(ctx, sp, teamName, now, scoreWindowOffsets)
	if len(games) == 0 {
		return ScoreSnapshot{
			Team:          teamName,
			TeamScore:     game.ScorePlaceholder,
			Opponent:      "No games found",
			OpponentScore: game.ScorePlaceholder,
			Status:        "No upcoming games",
			Venue:         game.ScorePlaceholder,
			LastUpdated:   now.Format(clockFormat),
			NextGame:      nil,
		}, nil
	}

	primary, next := selectPrimaryAndNext(games, now)

	snapshot := ScoreSnapshot{
		Team:          primary.Team,
		TeamScore:     primary.TeamScore,
		Opponent:      primary.Opponent,
		OpponentScore: primary.OpponentScore,
		Status:        primary.StatusDetail,
		StatusType:    primary.Status.ESPNName(),
		GameDate:      primary.Kickoff.Format(time.RFC3339),
		Venue:         primary.Venue,
		LastUpdated:   now.Format(clockFormat),
	}
	if next != nil {
		snapshot.NextGame = &NextGame{
			Opponent: next.Opponent,
			GameDate: next.Kickoff.Format(time.RFC3339),
			Venue:    next.Venue,
		}
	}

	return snapshot, nil
}

// collectTeamGames fans the per-day scoreboard fetches out on a worker
// pool. A day that fails after retries is treated as a day without games
// so one bad upstream response cannot blank the whole window.
func (s *ScoreService) collectTeamGames(ctx context.Context, sp sport.Sport, teamName string, now time.Time, offsets []int) []game.Game {
	var mu sync.Mutex
	var out []game.Game
	var wg sync.WaitGroup

	pool, poolErr := ants.NewPool(len(offsets))
	if poolErr == nil {
		defer pool.Release()
	}

	for _, offset := range offsets {
		day := now.AddDate(0, 0, offset)
		wg.Add(1)
		task := func() {
			defer wg.Done()

			payload, err := s.provider.FetchScoreboard(ctx, sp.ESPNPath, day)
			if err != nil {
				s.logger.WarnContext(ctx, "scoreboard day fetch failed",
					"sport", sp.Key,
					"date", day.Format("20060102"),
					"error", err,
				)
				return
			}

			matched := matchTeamGames(payload, teamName)
			if len(matched) == 0 {
				return
			}
			mu.Lock()
			out = append(out, matched...)
			mu.Unlock()
		}

		if poolErr != nil || pool.Submit(task) != nil {
			task()
		}
	}
	wg.Wait()

	// The pool finishes days in arbitrary order, so kickoff order is the
	// tie-break everywhere downstream: with several live games the one
	// that started first is featured.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Kickoff.Before(out[j].Kickoff)
	})

	return out
}

// matchTeamGames extracts the games in one scoreboard payload that involve
// the requested team. At most one entry per event.
func matchTeamGames(payload map[string]any, teamName string) []game.Game {
	var out []game.Game

	for _, rawEvent := range getArray(payload, "events") {
		event := asMap(rawEvent)
		if event == nil {
			continue
		}

		competition := firstMap(getArray(event, "competitions"))
		competitors := getArray(competition, "competitors")

		for _, rawSide := range competitors {
			side := asMap(rawSide)
			if side == nil {
				continue
			}
			displayName := getString(getMap(side, "team"), "displayName")
			if displayName == "" || !team.Match(teamName, displayName) {
				continue
			}

			kickoff, err := game.ParseKickoff(getString(event, "date"))
			if err != nil {
				break
			}

			statusType := getMap(getMap(event, "status"), "type")
			status := game.StatusFromName(getStringDefault(statusType, "name", "STATUS_SCHEDULED"))

			opponentName, opponentScore := opponentOf(competitors, getString(side, "id"))

			teamScore := game.ScorePlaceholder
			oppScore := game.ScorePlaceholder
			if status.ShowsScore() {
				teamScore = getStringDefault(side, "score", "0")
				oppScore = opponentScore
			}

			out = append(out, game.Game{
				EventID:       getString(event, "id"),
				Team:          displayName,
				TeamScore:     teamScore,
				Opponent:      opponentName,
				OpponentScore: oppScore,
				StatusDetail:  getStringDefault(statusType, "detail", "Scheduled"),
				Status:        status,
				Kickoff:       kickoff,
				Venue:         getStringDefault(getMap(competition, "venue"), "fullName", "TBD"),
			})
			break
		}
	}

	return out
}

func opponentOf(competitors []any, currentID string) (name, score string) {
	for _, rawSide := range competitors {
		side := asMap(rawSide)
		if side == nil || getString(side, "id") == currentID {
			continue
		}
		return getStringDefault(getMap(side, "team"), "displayName", "Unknown"),
			getStringDefault(side, "score", "0")
	}
	return "Unknown", "0"
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/checkball/checkball/internal/domain/game"
	"github.com/checkball/checkball/internal/platform/logging"
)

type fakeProvider struct {
	mu          sync.Mutex
	scoreboards map[string]map[string]any
	failures    map[string]error
	summaries   map[string]map[string]any
	summaryErr  error
	calls       []string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		scoreboards: make(map[string]map[string]any),
		failures:    make(map[string]error),
		summaries:   make(map[string]map[string]any),
	}
}

func (f *fakeProvider) FetchScoreboard(_ context.Context, leaguePath string, day time.Time) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := day.Format("20060102")
	f.calls = append(f.calls, leaguePath+"/"+key)
	if err, ok := f.failures[key]; ok {
		return nil, err
	}
	if payload, ok := f.scoreboards[key]; ok {
		return payload, nil
	}
	return map[string]any{"events": []any{}}, nil
}

func (f *fakeProvider) FetchSummary(_ context.Context, leaguePath, eventID string) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	payload, ok := f.summaries[eventID]
	if !ok {
		return nil, fmt.Errorf("no summary for event %s", eventID)
	}
	return payload, nil
}

func scoreboardEvent(eventID, date, statusName, teamName, teamScore, oppName, oppScore string) map[string]any {
	return map[string]any{
		"events": []any{
			map[string]any{
				"id":   eventID,
				"date": date,
				"status": map[string]any{
					"type": map[string]any{
						"name":   statusName,
						"detail": "Detail " + statusName,
					},
				},
				"competitions": []any{
					map[string]any{
						"venue": map[string]any{"fullName": "Test Arena"},
						"competitors": []any{
							map[string]any{
								"id":    "1",
								"score": teamScore,
								"team":  map[string]any{"displayName": teamName},
							},
							map[string]any{
								"id":    "2",
								"score": oppScore,
								"team":  map[string]any{"displayName": oppName},
							},
						},
					},
				},
			},
		},
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 28, 15, 0, 0, 0, game.Eastern())
}

func newTestScoreService(provider GameDataProvider) *ScoreService {
	svc := NewScoreService(provider, logging.NewNop())
	svc.now = fixedNow
	return svc
}

func TestGetScores_UnsupportedSport(t *testing.T) {
	t.Parallel()

	svc := newTestScoreService(newFakeProvider())
	_, err := svc.GetScores(context.Background(), "cricket", "anyone")
	if !errors.Is(err, ErrUnsupportedSport) {
		t.Fatalf("error got=%v want ErrUnsupportedSport", err)
	}
}

func TestGetScores_EmptyTeam(t *testing.T) {
	t.Parallel()

	svc := newTestScoreService(newFakeProvider())
	_, err := svc.GetScores(context.Background(), "nba", "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error got=%v want ErrInvalidInput", err)
	}
}

func TestGetScores_PlaceholderWhenNoGames(t *testing.T) {
	t.Parallel()

	svc := newTestScoreService(newFakeProvider())
	snapshot, err := svc.GetScores(context.Background(), "nba", "Celtics")
	if err != nil {
		t.Fatalf("GetScores error: %v", err)
	}

	if snapshot.Team != "Celtics" {
		t.Fatalf("team got=%q want=%q", snapshot.Team, "Celtics")
	}
	if snapshot.TeamScore != game.ScorePlaceholder || snapshot.OpponentScore != game.ScorePlaceholder {
		t.Fatalf("expected placeholder scores, got %q/%q", snapshot.TeamScore, snapshot.OpponentScore)
	}
	if snapshot.Opponent != "No games found" {
		t.Fatalf("opponent got=%q", snapshot.Opponent)
	}
	if snapshot.Status != "No upcoming games" {
		t.Fatalf("status got=%q", snapshot.Status)
	}
	if snapshot.NextGame != nil {
		t.Fatalf("next game got=%+v want nil", snapshot.NextGame)
	}
	if snapshot.LastUpdated != "15:00" {
		t.Fatalf("last updated got=%q want=%q", snapshot.LastUpdated, "15:00")
	}
}

func TestGetScores_LiveGameWithNextPreview(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider()
	provider.scoreboards["20260828"] = scoreboardEvent(
		"live1", "2026-08-28T18:30Z", "STATUS_IN_PROGRESS",
		"Boston Celtics", "54", "Miami Heat", "49",
	)
	provider.scoreboards["20260830"] = scoreboardEvent(
		"next1", "2026-08-30T23:00Z", "STATUS_SCHEDULED",
		"Boston Celtics", "", "New York Knicks", "",
	)

	svc := newTestScoreService(provider)
	snapshot, err := svc.GetScores(context.Background(), "nba", "celtics")
	if err != nil {
		t.Fatalf("GetScores error: %v", err)
	}

	if snapshot.Team != "Boston Celtics" {
		t.Fatalf("team got=%q", snapshot.Team)
	}
	if snapshot.TeamScore != "54" || snapshot.OpponentScore != "49" {
		t.Fatalf("scores got=%q/%q want 54/49", snapshot.TeamScore, snapshot.OpponentScore)
	}
	if snapshot.StatusType != "STATUS_IN_PROGRESS" {
		t.Fatalf("status type got=%q", snapshot.StatusType)
	}
	if snapshot.Venue != "Test Arena" {
		t.Fatalf("venue got=%q", snapshot.Venue)
	}
	if snapshot.NextGame == nil {
		t.Fatalf("expected next game preview")
	}
	if snapshot.NextGame.Opponent != "New York Knicks" {
		t.Fatalf("next opponent got=%q", snapshot.NextGame.Opponent)
	}
}

func TestGetScores_EarliestLiveGameIsFeatured(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider()
	provider.scoreboards["20260827"] = scoreboardEvent(
		"liveEarly", "2026-08-27T23:00Z", "STATUS_IN_PROGRESS",
		"Boston Celtics", "12", "Orlando Magic", "15",
	)
	provider.scoreboards["20260828"] = scoreboardEvent(
		"liveLate", "2026-08-28T18:30Z", "STATUS_IN_PROGRESS",
		"Boston Celtics", "54", "Miami Heat", "49",
	)

	svc := newTestScoreService(provider)
	snapshot, err := svc.GetScores(context.Background(), "nba", "celtics")
	if err != nil {
		t.Fatalf("GetScores error: %v", err)
	}
	if snapshot.Opponent != "Orlando Magic" {
		t.Fatalf("opponent got=%q, the earlier live game must be featured", snapshot.Opponent)
	}
}

func TestGetScores_ScheduledGameHidesScores(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider()
	provider.scoreboards["20260829"] = scoreboardEvent(
		"sched1", "2026-08-29T23:00Z", "STATUS_SCHEDULED",
		"Boston Celtics", "0", "Miami Heat", "0",
	)

	svc := newTestScoreService(provider)
	snapshot, err := svc.GetScores(context.Background(), "nba", "celtics")
	if err != nil {
		t.Fatalf("GetScores error: %v", err)
	}
	if snapshot.TeamScore != game.ScorePlaceholder || snapshot.OpponentScore != game.ScorePlaceholder {
		t.Fatalf("scheduled game must hide scores, got %q/%q", snapshot.TeamScore, snapshot.OpponentScore)
	}
}

func TestGetScores_ToleratesFailedDays(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider()
	provider.failures["20260827"] = fmt.Errorf("upstream exploded")
	provider.failures["20260829"] = fmt.Errorf("upstream exploded")
	provider.scoreboards["20260828"] = scoreboardEvent(
		"final1", "2026-08-28T00:30Z", "STATUS_FINAL",
		"Boston Celtics", "101", "Miami Heat", "88",
	)

	svc := newTestScoreService(provider)
	snapshot, err := svc.GetScores(context.Background(), "nba", "celtics")
	if err != nil {
		t.Fatalf("GetScores error: %v", err)
	}
	if snapshot.TeamScore != "101" {
		t.Fatalf("team score got=%q want=101", snapshot.TeamScore)
	}
}

func TestGetScores_FetchesFullWindow(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider()
	svc := newTestScoreService(provider)
	if _, err := svc.GetScores(context.Background(), "nba", "celtics"); err != nil {
		t.Fatalf("GetScores error: %v", err)
	}

	provider.mu.Lock()
	defer provider.mu.Unlock()
	if len(provider.calls) != len(scoreWindowOffsets) {
		t.Fatalf("scoreboard fetches got=%d want=%d", len(provider.calls), len(scoreWindowOffsets))
	}
}

func TestListTeams(t *testing.T) {
	t.Parallel()

	svc := newTestScoreService(newFakeProvider())

	teams, err := svc.ListTeams("nba")
	if err != nil {
		t.Fatalf("ListTeams error: %v", err)
	}
	if len(teams) != 30 {
		t.Fatalf("team count got=%d want=30", len(teams))
	}

	if _, err := svc.ListTeams("cricket"); !errors.Is(err, ErrUnsupportedSport) {
		t.Fatalf("error got=%v want ErrUnsupportedSport", err)
	}
}

func TestListSports(t *testing.T) {
	t.Parallel()

	svc := newTestScoreService(newFakeProvider())
	if got := len(svc.ListSports()); got != 8 {
		t.Fatalf("sport count got=%d want=8", got)
	}
}

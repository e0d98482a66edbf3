package usecase

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/checkball/checkball/internal/domain/game"
	"github.com/checkball/checkball/internal/domain/sport"
)

// rejectedLeaderValues are placeholder stat values ESPN uses for players
// who did not record the stat.
var rejectedLeaderValues = map[string]struct{}{
	"0":   {},
	"":    {},
	"N/A": {},
	"--":  {},
}

type indexCategory struct {
	name    string
	indices []int
}

var basketballCategories = []indexCategory{
	{name: "Points", indices: []int{0, 12, 13}},
	{name: "Rebounds", indices: []int{1, 7, 8}},
	{name: "Assists", indices: []int{2, 5, 6}},
	{name: "Steals", indices: []int{3, 9, 10}},
	{name: "Blocks", indices: []int{4, 11}},
}

var footballCategories = []indexCategory{
	{name: "Passing Yards", indices: []int{0, 1, 8, 9}},
	{name: "Rushing Yards", indices: []int{2, 3, 10, 11}},
	{name: "Receiving Yards", indices: []int{4, 5, 12, 13}},
	{name: "Touchdowns", indices: []int{6, 7, 14, 15}},
	{name: "Tackles", indices: []int{16, 17, 18}},
}

var soccerCategories = []indexCategory{
	{name: "Goals", indices: []int{0, 1}},
	{name: "Assists", indices: []int{2, 3}},
	{name: "Shots", indices: []int{4, 5}},
	{name: "Saves", indices: []int{6, 7, 8}},
	{name: "Yellow Cards", indices: []int{9, 10}},
}

var hockeyCategories = []indexCategory{
	{name: "Goals", indices: []int{0, 1}},
	{name: "Assists", indices: []int{2, 3}},
	{name: "Points", indices: []int{4, 5}},
	{name: "Saves", indices: []int{6, 7, 8}},
	{name: "Penalty Minutes", indices: []int{9, 10}},
}

var genericCategories = []indexCategory{
	{name: "Performance", indices: []int{0, 1, 2}},
	{name: "Key Stats", indices: []int{3, 4, 5}},
	{name: "Other Stats", indices: []int{6, 7, 8}},
}

type mlbCategory struct {
	name           string
	positionGroups []string
	indices        []int
}

var mlbCategories = []mlbCategory{
	{name: "Hits", positionGroups: []string{"batting", "hitters", "offense"}, indices: []int{0, 1, 2, 3, 4}},
	{name: "RBIs", positionGroups: []string{"batting", "hitters", "offense"}, indices: []int{1, 2, 3, 4, 5}},
	{name: "Home Runs", positionGroups: []string{"batting", "hitters", "offense"}, indices: []int{2, 3, 4, 5, 6}},
	{name: "Runs Scored", positionGroups: []string{"batting", "hitters", "offense"}, indices: []int{3, 4, 5, 6, 7}},
	{name: "Strikeouts (Pitching)", positionGroups: []string{"pitching", "pitchers"}, indices: []int{0, 1, 2, 3, 4}},
	{name: "Innings Pitched", positionGroups: []string{"pitching", "pitchers"}, indices: []int{1, 2, 3, 4, 5}},
}

var mlbFallbackCategories = []mlbCategory{
	{name: "Performance Stat 1", indices: []int{0, 1, 2}},
	{name: "Performance Stat 2", indices: []int{1, 2, 3}},
	{name: "Performance Stat 3", indices: []int{2, 3, 4}},
	{name: "Performance Stat 4", indices: []int{3, 4, 5}},
}

// extractLeaders walks a summary payload through an ordered chain of
// parsing strategies and returns the first non-empty result. MLB payloads
// number box-score columns differently per position group, so MLB only
// ever uses the box-score strategy; an MLB summary without usable
// box-score data yields no leaders instead of mislabeled ones.
func extractLeaders(payload map[string]any, sp sport.Sport) map[string][]game.Leader {
	if payload == nil {
		return map[string][]game.Leader{}
	}

	boxscore := getMap(payload, "boxscore")

	if sp.Family == sport.FamilyBaseball {
		if players := getArray(boxscore, "players"); len(players) > 0 {
			if leaders := extractMLBLeaders(players); len(leaders) > 0 {
				return leaders
			}
		}
		return map[string][]game.Leader{}
	}

	if items := getArray(payload, "leaders"); len(items) > 0 {
		if leaders := parseLeadersFromMainArray(items); len(leaders) > 0 {
			return leaders
		}
	}

	if players := getArray(boxscore, "players"); len(players) > 0 {
		if leaders := extractLeadersByIndices(players, categoriesForFamily(sp.Family)); len(leaders) > 0 {
			return leaders
		}
	}

	if leaders := extractNestedLeaders(boxscore); len(leaders) > 0 {
		return leaders
	}

	if leaders := extractTeamScoringLeaders(getMap(payload, "header")); len(leaders) > 0 {
		return leaders
	}

	return map[string][]game.Leader{}
}

func categoriesForFamily(family sport.Family) []indexCategory {
	switch family {
	case sport.FamilyBasketball:
		return basketballCategories
	case sport.FamilyFootball:
		return footballCategories
	case sport.FamilySoccer:
		return soccerCategories
	case sport.FamilyHockey:
		return hockeyCategories
	default:
		return genericCategories
	}
}

// parseLeadersFromMainArray reads the per-team "leaders" array the summary
// endpoint exposes for most sports.
func parseLeadersFromMainArray(items []any) map[string][]game.Leader {
	leaders := make(map[string][]game.Leader)

	for teamIndex, rawTeam := range items {
		teamData := asMap(rawTeam)
		if teamData == nil {
			continue
		}

		teamInfo := getMap(teamData, "team")
		teamName := firstNonEmpty(
			getString(teamInfo, "abbreviation"),
			getString(teamInfo, "shortDisplayName"),
			getString(teamInfo, "displayName"),
			fmt.Sprintf("Team %d", teamIndex+1),
		)

		for categoryIndex, rawCategory := range getArray(teamData, "leaders") {
			category := asMap(rawCategory)
			if category == nil {
				continue
			}

			categoryName := firstNonEmpty(
				getString(category, "displayName"),
				getString(category, "name"),
				fmt.Sprintf("Category %d", categoryIndex),
			)

			for _, rawPlayer := range getArray(category, "leaders") {
				playerData := asMap(rawPlayer)
				if playerData == nil {
					continue
				}

				athlete := getMap(playerData, "athlete")
				playerName := firstNonEmpty(
					getString(athlete, "displayName"),
					getString(athlete, "fullName"),
					getString(athlete, "name"),
					getString(athlete, "lastName"),
					getString(playerData, "displayName"),
					getString(playerData, "name"),
				)
				statValue := firstNonEmpty(
					getString(playerData, "displayValue"),
					getString(playerData, "value"),
					getString(playerData, "statValue"),
				)

				if playerName == "" {
					continue
				}
				if _, rejected := rejectedLeaderValues[statValue]; rejected {
					continue
				}

				leaders[categoryName] = append(leaders[categoryName], game.Leader{
					Name:  playerName,
					Value: statValue,
					Team:  teamName,
				})
			}
		}
	}

	return leaders
}

type boxScorePlayer struct {
	name          string
	team          string
	positionGroup string
	stats         []string
}

func collectBoxScorePlayers(players []any) []boxScorePlayer {
	var out []boxScorePlayer

	for _, rawTeam := range players {
		teamData := asMap(rawTeam)
		if teamData == nil {
			continue
		}
		teamName := getStringDefault(getMap(teamData, "team"), "abbreviation", "UNK")

		for _, rawGroup := range getArray(teamData, "statistics") {
			group := asMap(rawGroup)
			if group == nil {
				continue
			}
			groupName := getString(group, "name")

			for _, rawAthlete := range getArray(group, "athletes") {
				athlete := asMap(rawAthlete)
				if athlete == nil {
					continue
				}

				rawStats := getArray(athlete, "stats")
				if len(rawStats) == 0 {
					continue
				}
				stats := make([]string, 0, len(rawStats))
				for _, rawStat := range rawStats {
					stats = append(stats, valueString(rawStat))
				}

				name := getString(getMap(athlete, "athlete"), "displayName")
				if name == "" {
					continue
				}

				out = append(out, boxScorePlayer{
					name:          name,
					team:          teamName,
					positionGroup: groupName,
					stats:         stats,
				})
			}
		}
	}

	return out
}

// extractLeadersByIndices ranks players by the first usable stat column
// out of each category's candidate indices. ESPN moves columns around
// between seasons, which is why every category carries alternates.
func extractLeadersByIndices(players []any, categories []indexCategory) map[string][]game.Leader {
	collected := collectBoxScorePlayers(players)
	leaders := make(map[string][]game.Leader)

	for _, category := range categories {
		ranked := rankPlayersByIndices(collected, nil, category.indices)
		if len(ranked) > 0 {
			leaders[category.name] = ranked
		}
	}

	return leaders
}

func extractMLBLeaders(players []any) map[string][]game.Leader {
	collected := collectBoxScorePlayers(players)
	leaders := make(map[string][]game.Leader)

	for _, category := range mlbCategories {
		ranked := rankPlayersByIndices(collected, category.positionGroups, category.indices)
		if len(ranked) > 0 {
			leaders[category.name] = ranked
		}
	}
	if len(leaders) > 0 {
		return leaders
	}

	// Position group names did not line up; retry without the filter so a
	// reshuffled payload still produces something.
	for _, category := range mlbFallbackCategories {
		ranked := rankPlayersByIndices(collected, nil, category.indices)
		if len(ranked) > 0 {
			leaders[category.name] = ranked
		}
	}

	return leaders
}

func rankPlayersByIndices(players []boxScorePlayer, positionGroups []string, indices []int) []game.Leader {
	type candidate struct {
		leader  game.Leader
		numeric float64
	}
	var candidates []candidate

	for _, player := range players {
		if len(positionGroups) > 0 && !matchesPositionGroup(player.positionGroup, positionGroups) {
			continue
		}

		for _, index := range indices {
			if index >= len(player.stats) {
				continue
			}
			value := player.stats[index]
			if value == "" || value == "--" || value == "0" {
				continue
			}
			numeric, err := strconv.ParseFloat(value, 64)
			if err != nil || numeric <= 0 {
				continue
			}

			candidates = append(candidates, candidate{
				leader: game.Leader{
					Name:  player.name,
					Value: value,
					Team:  player.team,
				},
				numeric: numeric,
			})
			break
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].numeric > candidates[j].numeric
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}

	out := make([]game.Leader, 0, len(candidates))
	for _, item := range candidates {
		out = append(out, item.leader)
	}
	return out
}

func matchesPositionGroup(groupName string, wanted []string) bool {
	lowered := strings.ToLower(groupName)
	for _, candidate := range wanted {
		if strings.Contains(lowered, candidate) {
			return true
		}
	}
	return false
}

// extractNestedLeaders looks for leader arrays tucked inside the boxscore
// itself, which some soccer payloads use instead of the top-level array.
func extractNestedLeaders(boxscore map[string]any) map[string][]game.Leader {
	if boxscore == nil {
		return nil
	}

	if items := getArray(boxscore, "leaders"); len(items) > 0 {
		return parseLeadersFromMainArray(items)
	}

	leaders := make(map[string][]game.Leader)
	for _, rawTeam := range getArray(boxscore, "teams") {
		teamData := asMap(rawTeam)
		if teamData == nil {
			continue
		}
		if _, ok := teamData["leaders"]; !ok {
			continue
		}
		for name, entries := range parseLeadersFromMainArray([]any{rawTeam}) {
			leaders[name] = append(leaders[name], entries...)
		}
	}

	return leaders
}

// extractTeamScoringLeaders is the last-resort strategy: surface the two
// team scores from the header, higher score first.
func extractTeamScoringLeaders(header map[string]any) map[string][]game.Leader {
	competition := firstMap(getArray(header, "competitions"))
	competitors := getArray(competition, "competitors")
	if len(competitors) < 2 {
		return nil
	}

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
	if home == nil || away == nil {
		return nil
	}

	homeScore := getString(home, "score")
	awayScore := getString(away, "score")
	if (homeScore == "" || homeScore == "0") && (awayScore == "" || awayScore == "0") {
		return nil
	}

	homeInt, homeErr := strconv.Atoi(firstNonEmpty(homeScore, "0"))
	awayInt, awayErr := strconv.Atoi(firstNonEmpty(awayScore, "0"))
	if homeErr != nil || awayErr != nil {
		return nil
	}

	homeName := getStringDefault(getMap(home, "team"), "abbreviation", "HOME")
	awayName := getStringDefault(getMap(away, "team"), "abbreviation", "AWAY")

	entries := []game.Leader{
		{Name: "Team Score", Value: homeScore, Team: homeName},
		{Name: "Team Score", Value: awayScore, Team: awayName},
	}
	if awayInt > homeInt {
		entries[0], entries[1] = entries[1], entries[0]
	}

	return map[string][]game.Leader{"Team Scoring": entries}
}

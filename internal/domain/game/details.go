package game

// TeamSide is one side of a game in the details view.
type TeamSide struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Score     string `json:"score"`
	Logo      string `json:"logo"`
}

// DetailStatus carries the live state shown in the details modal.
type DetailStatus struct {
	Display   string `json:"display"`
	State     string `json:"state"`
	Period    int    `json:"period"`
	Clock     string `json:"clock"`
	Completed bool   `json:"completed"`
}

// Venue identifies where a game is played.
type Venue struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

// StatLine is a single named statistic in a team box score.
type StatLine struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Value       string `json:"value"`
}

// TeamBoxScore is one team's box score column.
type TeamBoxScore struct {
	TeamName   string     `json:"team_name"`
	TeamAbbr   string     `json:"team_abbr"`
	Statistics []StatLine `json:"statistics"`
}

// Leader is one player entry in a leader category.
type Leader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Team  string `json:"team"`
}

// ScoringPlay is one entry in the scoring summary.
type ScoringPlay struct {
	Period      string `json:"period"`
	Clock       string `json:"clock"`
	Team        string `json:"team"`
	Description string `json:"description"`
	ScoreValue  int    `json:"score_value"`
}

// Details is the full game breakdown behind the dashboard modal.
type Details struct {
	HomeTeam       TeamSide                     `json:"home_team"`
	AwayTeam       TeamSide                     `json:"away_team"`
	Status         DetailStatus                 `json:"status"`
	Venue          Venue                        `json:"venue"`
	Date           string                       `json:"date"`
	BoxScore       []TeamBoxScore               `json:"box_score,omitempty"`
	TeamStats      map[string]map[string]string `json:"team_stats"`
	Leaders        map[string][]Leader          `json:"leaders"`
	ScoringSummary []ScoringPlay                `json:"scoring_summary"`
}

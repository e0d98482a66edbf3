package sport

// Static league rosters. ESPN has no cheap "list teams" endpoint on the
// scoreboard API, so the dashboard picker works off these lists.
var rosters = map[string][]string{
	"nba": {
		"Atlanta Hawks", "Boston Celtics", "Brooklyn Nets", "Charlotte Hornets",
		"Chicago Bulls", "Cleveland Cavaliers", "Dallas Mavericks", "Denver Nuggets",
		"Detroit Pistons", "Golden State Warriors", "Houston Rockets", "Indiana Pacers",
		"LA Clippers", "Los Angeles Lakers", "Memphis Grizzlies", "Miami Heat",
		"Milwaukee Bucks", "Minnesota Timberwolves", "New Orleans Pelicans", "New York Knicks",
		"Oklahoma City Thunder", "Orlando Magic", "Philadelphia 76ers", "Phoenix Suns",
		"Portland Trail Blazers", "Sacramento Kings", "San Antonio Spurs", "Toronto Raptors",
		"Utah Jazz", "Washington Wizards",
	},
	"wnba": {
		"Atlanta Dream", "Chicago Sky", "Connecticut Sun", "Dallas Wings",
		"Indiana Fever", "Las Vegas Aces", "Los Angeles Sparks", "Minnesota Lynx",
		"New York Liberty", "Phoenix Mercury", "Seattle Storm", "Washington Mystics",
	},
	"nfl": {
		"Arizona Cardinals", "Atlanta Falcons", "Baltimore Ravens", "Buffalo Bills",
		"Carolina Panthers", "Chicago Bears", "Cincinnati Bengals", "Cleveland Browns",
		"Dallas Cowboys", "Denver Broncos", "Detroit Lions", "Green Bay Packers",
		"Houston Texans", "Indianapolis Colts", "Jacksonville Jaguars", "Kansas City Chiefs",
		"Las Vegas Raiders", "Los Angeles Chargers", "Los Angeles Rams", "Miami Dolphins",
		"Minnesota Vikings", "New England Patriots", "New Orleans Saints", "New York Giants",
		"New York Jets", "Philadelphia Eagles", "Pittsburgh Steelers", "San Francisco 49ers",
		"Seattle Seahawks", "Tampa Bay Buccaneers", "Tennessee Titans", "Washington Commanders",
	},
	"mls": {
		"Atlanta United FC", "Austin FC", "CF Montréal", "Charlotte FC",
		"Chicago Fire FC", "Colorado Rapids", "Columbus Crew", "D.C. United",
		"FC Cincinnati", "FC Dallas", "Houston Dynamo FC", "Inter Miami CF",
		"LA Galaxy", "Los Angeles FC", "Minnesota United FC", "Nashville SC",
		"New England Revolution", "New York City FC", "New York Red Bulls", "Orlando City SC",
		"Philadelphia Union", "Portland Timbers", "Real Salt Lake", "San Jose Earthquakes",
		"Seattle Sounders FC", "Sporting Kansas City", "St. Louis City SC", "Toronto FC",
		"Vancouver Whitecaps FC",
	},
	"premier league": {
		"Arsenal", "Aston Villa", "Bournemouth", "Brentford", "Brighton & Hove Albion",
		"Chelsea", "Crystal Palace", "Everton", "Fulham", "Ipswich Town",
		"Leicester City", "Liverpool", "Manchester City", "Manchester United",
		"Newcastle United", "Nottingham Forest", "Southampton", "Tottenham Hotspur",
		"West Ham United", "Wolverhampton Wanderers",
	},
	"la liga": {
		"Athletic Bilbao", "Atlético Madrid", "Barcelona", "Celta Vigo", "Deportivo Alavés",
		"Espanyol", "Getafe", "Girona", "Las Palmas", "Leganés", "Mallorca", "Osasuna",
		"Rayo Vallecano", "Real Betis", "Real Madrid", "Real Sociedad", "Sevilla",
		"Valencia", "Valladolid", "Villarreal",
	},
	"mlb": {
		"Arizona Diamondbacks", "Atlanta Braves", "Baltimore Orioles", "Boston Red Sox",
		"Chicago Cubs", "Chicago White Sox", "Cincinnati Reds", "Cleveland Guardians",
		"Colorado Rockies", "Detroit Tigers", "Houston Astros", "Kansas City Royals",
		"Los Angeles Angels", "Los Angeles Dodgers", "Miami Marlins", "Milwaukee Brewers",
		"Minnesota Twins", "New York Mets", "New York Yankees", "Oakland Athletics",
		"Philadelphia Phillies", "Pittsburgh Pirates", "San Diego Padres", "San Francisco Giants",
		"Seattle Mariners", "St. Louis Cardinals", "Tampa Bay Rays", "Texas Rangers",
		"Toronto Blue Jays", "Washington Nationals",
	},
	"nhl": {
		"Anaheim Ducks", "Arizona Coyotes", "Boston Bruins", "Buffalo Sabres",
		"Calgary Flames", "Carolina Hurricanes", "Chicago Blackhawks", "Colorado Avalanche",
		"Columbus Blue Jackets", "Dallas Stars", "Detroit Red Wings", "Edmonton Oilers",
		"Florida Panthers", "Los Angeles Kings", "Minnesota Wild", "Montréal Canadiens",
		"Nashville Predators", "New Jersey Devils", "New York Islanders", "New York Rangers",
		"Ottawa Senators", "Philadelphia Flyers", "Pittsburgh Penguins", "San Jose Sharks",
		"Seattle Kraken", "St. Louis Blues", "Tampa Bay Lightning", "Toronto Maple Leafs",
		"Utah Hockey Club", "Vancouver Canucks", "Vegas Golden Knights", "Washington Capitals",
		"Winnipeg Jets",
	},
}

// Teams returns the team names for a league key, or nil for an unknown key.
func Teams(key string) []string {
	roster, ok := rosters[NormalizeKey(key)]
	if !ok {
		return nil
	}
	out := make([]string, len(roster))
	copy(out, roster)
	return out
}

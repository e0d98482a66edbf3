package team

import "strings"

// Shorthand names users type into the dashboard mapped to the names ESPN
// reports. Only leagues where the short form is ambiguous or differs from
// a simple substring need entries here.
var canonicalNames = map[string]string{
	// MLB
	"athletics":    "oakland athletics",
	"a's":          "oakland athletics",
	"oakland a's":  "oakland athletics",
	"dodgers":      "los angeles dodgers",
	"angels":       "los angeles angels",
	"yankees":      "new york yankees",
	"mets":         "new york mets",
	"red sox":      "boston red sox",
	"white sox":    "chicago white sox",
	"blue jays":    "toronto blue jays",
	"guardians":    "cleveland guardians",
	"diamondbacks": "arizona diamondbacks",
	"rays":         "tampa bay rays",
	// WNBA
	"liberty": "new york liberty",
	"aces":    "las vegas aces",
	"sky":     "chicago sky",
	"sun":     "connecticut sun",
	"storm":   "seattle storm",
	"lynx":    "minnesota lynx",
	"sparks":  "los angeles sparks",
	"mercury": "phoenix mercury",
	"mystics": "washington mystics",
	"fever":   "indiana fever",
	"wings":   "dallas wings",
	"dream":   "atlanta dream",
	// La Liga
	"barcelona":       "barcelona",
	"barca":           "barcelona",
	"real madrid":     "real madrid",
	"madrid":          "real madrid",
	"atletico madrid": "atlético madrid",
	"atletico":        "atlético madrid",
	"athletic bilbao": "athletic bilbao",
	"athletic":        "athletic bilbao",
	"real sociedad":   "real sociedad",
	"sociedad":        "real sociedad",
	"valencia":        "valencia",
	"sevilla":         "sevilla",
	"villarreal":      "villarreal",
	"betis":           "real betis",
	"real betis":      "real betis",
}

// Words too generic to count as a match on their own.
var stopWords = map[string]struct{}{
	"the":    {},
	"of":     {},
	"and":    {},
	"fc":     {},
	"united": {},
	"city":   {},
}

// Normalize lowercases a team name and resolves known shorthand to the
// name ESPN reports.
func Normalize(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := canonicalNames[normalized]; ok {
		return canonical
	}
	return normalized
}

// Match reports whether a user-supplied team name refers to the team ESPN
// names in a scoreboard event. Comparison order: canonical equality,
// substring containment either way, then overlap of significant words.
func Match(query, candidate string) bool {
	queryNorm := Normalize(query)
	candidateNorm := Normalize(candidate)

	if queryNorm == candidateNorm {
		return true
	}
	if queryNorm != "" && strings.Contains(candidateNorm, queryNorm) {
		return true
	}
	if candidateNorm != "" && strings.Contains(queryNorm, candidateNorm) {
		return true
	}

	queryWords := significantWords(queryNorm)
	candidateWords := significantWords(candidateNorm)
	if len(queryWords) == 0 || len(candidateWords) == 0 {
		return false
	}
	for word := range queryWords {
		if _, ok := candidateWords[word]; ok {
			return true
		}
	}

	return false
}

func significantWords(name string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, word := range strings.Fields(name) {
		if _, skip := stopWords[word]; skip {
			continue
		}
		out[word] = struct{}{}
	}
	return out
}

package sport

import (
	"fmt"
	"strings"
)

// Family groups leagues that share the same ESPN box-score layout.
type Family string

const (
	FamilyBasketball Family = "basketball"
	FamilyFootball   Family = "football"
	FamilySoccer     Family = "soccer"
	FamilyBaseball   Family = "baseball"
	FamilyHockey     Family = "hockey"
)

// Sport describes one supported league.
type Sport struct {
	Key         string
	DisplayName string
	ESPNPath    string
	Family      Family
}

var supported = []Sport{
	{Key: "nba", DisplayName: "NBA", ESPNPath: "basketball/nba", Family: FamilyBasketball},
	{Key: "wnba", DisplayName: "WNBA", ESPNPath: "basketball/wnba", Family: FamilyBasketball},
	{Key: "nfl", DisplayName: "NFL", ESPNPath: "football/nfl", Family: FamilyFootball},
	{Key: "mls", DisplayName: "MLS", ESPNPath: "soccer/usa.1", Family: FamilySoccer},
	{Key: "premier league", DisplayName: "Premier League", ESPNPath: "soccer/eng.1", Family: FamilySoccer},
	{Key: "la liga", DisplayName: "La Liga", ESPNPath: "soccer/esp.1", Family: FamilySoccer},
	{Key: "mlb", DisplayName: "MLB", ESPNPath: "baseball/mlb", Family: FamilyBaseball},
	{Key: "nhl", DisplayName: "NHL", ESPNPath: "hockey/nhl", Family: FamilyHockey},
}

var byKey = func() map[string]Sport {
	out := make(map[string]Sport, len(supported))
	for _, s := range supported {
		out[s.Key] = s
	}
	return out
}()

// Parse resolves a league key such as "nba" or "Premier League".
func Parse(raw string) (Sport, error) {
	key := NormalizeKey(raw)
	s, ok := byKey[key]
	if !ok {
		return Sport{}, fmt.Errorf("sport %q is not supported", strings.TrimSpace(raw))
	}
	return s, nil
}

// NormalizeKey lowercases a league key and collapses inner whitespace so
// "Premier  League" and "premier league" resolve to the same entry.
func NormalizeKey(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// All returns the supported leagues in a stable order.
func All() []Sport {
	out := make([]Sport, len(supported))
	copy(out, supported)
	return out
}

// Keys returns the canonical league keys in a stable order.
func Keys() []string {
	out := make([]string, 0, len(supported))
	for _, s := range supported {
		out = append(out, s.Key)
	}
	return out
}

func (s Sport) IsZero() bool {
	return s.Key == ""
}

package models

// PlayerIdentity is the result of resolving a nickname. It lives for one
// lookup and is never cached.
type PlayerIdentity struct {
	PlayerID string `json:"player_id"`
	Elo      int    `json:"elo"`
}

// MatchStat is one player's combat numbers for a single match.
type MatchStat struct {
	Kills      int     `json:"kills"`
	Deaths     int     `json:"deaths"`
	Headshots  int     `json:"headshots"`
	KDRatio    float64 `json:"kd_ratio"`
	Ace        int     `json:"ace"`
	KnifeKills int     `json:"knife_kills"`
}

// Aggregate holds the unrounded summary of a set of matches.
type Aggregate struct {
	Matches         int
	AvgKills        float64
	AvgKD           float64
	HSPercentage    float64
	TotalAce        int
	TotalKnifeKills int
}

// AggregateResult is what the web page, the overlay and the JSON API render.
type AggregateResult struct {
	Nickname        string  `json:"nickname"`
	Elo             int     `json:"elo"`
	AvgKills        int     `json:"avg_kills"`
	KDRatio         float64 `json:"kd_ratio"`
	HSPercentage    int     `json:"hs_percentage"`
	Rank            *int    `json:"rank"`
	Region          string  `json:"region"`
	Ace             int     `json:"ace"`
	KnifeKills      int     `json:"knife_kills"`
	MatchesAnalyzed int     `json:"matches_analyzed"`
	LookupID        string  `json:"lookup_id,omitempty"`
}

package models

// Player is the /players?nickname= response. Only the fields the stats
// pipeline reads are modelled; an empty PlayerID means the lookup missed.
type Player struct {
	PlayerID string                 `json:"player_id"`
	Nickname string                 `json:"nickname"`
	Country  string                 `json:"country,omitempty"`
	Avatar   string                 `json:"avatar,omitempty"`
	Games    map[string]GameProfile `json:"games"`
}

// GameProfile is one entry of Player.Games, keyed by game id ("cs2").
type GameProfile struct {
	Region     string `json:"region"`
	SkillLevel int    `json:"skill_level"`
	// FaceitElo is nil when the upstream omits the field.
	FaceitElo *int `json:"faceit_elo"`
}

// Elo returns the player's rating for game and whether it was present.
func (p *Player) Elo(game string) (int, bool) {
	if p == nil {
		return 0, false
	}
	profile, ok := p.Games[game]
	if !ok || profile.FaceitElo == nil {
		return 0, false
	}
	return *profile.FaceitElo, true
}

// MatchHistory is the /players/{id}/history response.
type MatchHistory struct {
	Items []MatchHistoryItem `json:"items"`
	Start int                `json:"start"`
	End   int                `json:"end"`
}

type MatchHistoryItem struct {
	MatchID    string `json:"match_id"`
	GameID     string `json:"game_id"`
	Status     string `json:"status"`
	StartedAt  int64  `json:"started_at"`
	FinishedAt int64  `json:"finished_at"`
}

// MatchStatsResponse is the /matches/{id}/stats response. A match has one
// round entry per map played.
type MatchStatsResponse struct {
	Rounds []MatchRound `json:"rounds"`
}

type MatchRound struct {
	MatchID string      `json:"match_id"`
	Teams   []MatchTeam `json:"teams"`
}

type MatchTeam struct {
	TeamID  string        `json:"team_id"`
	Players []MatchPlayer `json:"players"`
}

type MatchPlayer struct {
	PlayerID    string      `json:"player_id"`
	Nickname    string      `json:"nickname"`
	PlayerStats PlayerStats `json:"player_stats"`
}

// PlayerStats is a player's stat block inside a match round. FACEIT encodes
// every value as a string ("20", "1.33"); decoding goes through the flexible
// unmarshaler in flex_json.go. A field missing from the payload stays zero.
type PlayerStats struct {
	Kills      int     `json:"Kills"`
	Deaths     int     `json:"Deaths"`
	Assists    int     `json:"Assists"`
	Headshots  int     `json:"Headshots"`
	KDRatio    float64 `json:"K/D Ratio"`
	KRRatio    float64 `json:"K/R Ratio"`
	MVPs       int     `json:"MVPs"`
	TripleKill int     `json:"Triple Kills"`
	QuadroKill int     `json:"Quadro Kills"`
	PentaKills int     `json:"Penta Kills"`
	KnifeKills int     `json:"Knife Kills"`
	Result     int     `json:"Result"`
}

// MatchStat converts the upstream block into the per-match shape the
// aggregator consumes.
func (s PlayerStats) MatchStat() MatchStat {
	return MatchStat{
		Kills:      s.Kills,
		Deaths:     s.Deaths,
		Headshots:  s.Headshots,
		KDRatio:    s.KDRatio,
		Ace:        s.PentaKills,
		KnifeKills: s.KnifeKills,
	}
}

// PlayerRanking is the /rankings/games/{game}/regions/{region}/players/{id}
// response. Position is nil when the player is unranked in the region.
type PlayerRanking struct {
	Position *int `json:"position"`
}

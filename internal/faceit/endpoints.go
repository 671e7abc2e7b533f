package faceit

import (
	"context"
	"fmt"
	"net/url"

	"github.com/openfrag/faceit-stats/internal/models"
)

// Metric labels for each endpoint shape.
const (
	endpointPlayers    = "players"
	endpointHistory    = "history"
	endpointMatchStats = "match_stats"
	endpointRankings   = "rankings"
)

// GetPlayer looks up a player by nickname.
func (s *Session) GetPlayer(ctx context.Context, nickname string) (*models.Player, error) {
	var p models.Player
	path := "/players?" + url.Values{"nickname": {nickname}}.Encode()
	if err := s.Fetch(ctx, endpointPlayers, path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetMatchHistory returns up to limit recent matches for playerID in game.
func (s *Session) GetMatchHistory(ctx context.Context, playerID, game string, limit int) (*models.MatchHistory, error) {
	var h models.MatchHistory
	path := fmt.Sprintf("/players/%s/history?%s", url.PathEscape(playerID), url.Values{
		"game":  {game},
		"limit": {fmt.Sprint(limit)},
	}.Encode())
	if err := s.Fetch(ctx, endpointHistory, path, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// GetMatchStats returns the per-round player statistics of a match.
func (s *Session) GetMatchStats(ctx context.Context, matchID string) (*models.MatchStatsResponse, error) {
	var m models.MatchStatsResponse
	if err := s.Fetch(ctx, endpointMatchStats, "/matches/"+url.PathEscape(matchID)+"/stats", &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetPlayerRanking returns the player's leaderboard position in a region.
func (s *Session) GetPlayerRanking(ctx context.Context, game, region, playerID string) (*models.PlayerRanking, error) {
	var r models.PlayerRanking
	path := fmt.Sprintf("/rankings/games/%s/regions/%s/players/%s",
		url.PathEscape(game), url.PathEscape(region), url.PathEscape(playerID))
	if err := s.Fetch(ctx, endpointRankings, path, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

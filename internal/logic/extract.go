package logic

import (
	"context"
	"fmt"

	"github.com/openfrag/faceit-stats/internal/models"
)

// ExtractPlayerStat finds playerID in the first round of a match. It returns
// nil when the match has no rounds, the round has no teams, or the player is
// not listed.
func ExtractPlayerStat(resp *models.MatchStatsResponse, playerID string) *models.MatchStat {
	if resp == nil || len(resp.Rounds) == 0 {
		return nil
	}
	for _, team := range resp.Rounds[0].Teams {
		for _, p := range team.Players {
			if p.PlayerID == playerID {
				stat := p.PlayerStats.MatchStat()
				return &stat
			}
		}
	}
	return nil
}

// extractStats fetches one match and pulls out the player's numbers. A nil
// stat with a nil error means the player has no data in that match.
func (s *playerStatsService) extractStats(ctx context.Context, sess FaceitSession, matchID, playerID string) (*models.MatchStat, error) {
	resp, err := sess.GetMatchStats(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("match stats %s: %w", matchID, err)
	}

	stat := ExtractPlayerStat(resp, playerID)
	if stat == nil {
		matchExtractions.WithLabelValues("absent").Inc()
		s.logger.Debugw("Player missing from match stats", "match_id", matchID, "player_id", playerID)
		return nil, nil
	}
	matchExtractions.WithLabelValues("found").Inc()
	return stat, nil
}

package logic

import (
	"context"
	"fmt"
)

// DefaultHistoryLimit is the number of recent matches analysed per lookup.
const DefaultHistoryLimit = 20

// listRecentMatches returns the player's recent match ids in API order.
// Items without a match id are dropped.
func (s *playerStatsService) listRecentMatches(ctx context.Context, sess FaceitSession, playerID string) ([]string, error) {
	h, err := sess.GetMatchHistory(ctx, playerID, s.game, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("match history %s: %w", playerID, err)
	}

	ids := make([]string, 0, len(h.Items))
	for _, item := range h.Items {
		if item.MatchID == "" {
			continue
		}
		ids = append(ids, item.MatchID)
	}
	return ids, nil
}

package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/openfrag/faceit-stats/internal/faceit"
)

const (
	DefaultRegion = "EU"
	DefaultGame   = "cs2"
)

// getRank returns the player's regional leaderboard position, or nil when
// the player is unranked there (including a 404 from the rankings endpoint).
func (s *playerStatsService) getRank(ctx context.Context, sess FaceitSession, playerID, region string) (*int, error) {
	r, err := sess.GetPlayerRanking(ctx, s.game, region, playerID)
	if errors.Is(err, faceit.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rank %s/%s: %w", region, playerID, err)
	}
	return r.Position, nil
}

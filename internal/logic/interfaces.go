package logic

import (
	"context"

	"github.com/openfrag/faceit-stats/internal/models"
)

// FaceitSession is the subset of faceit.Session the stats pipeline uses.
type FaceitSession interface {
	GetPlayer(ctx context.Context, nickname string) (*models.Player, error)
	GetMatchHistory(ctx context.Context, playerID, game string, limit int) (*models.MatchHistory, error)
	GetMatchStats(ctx context.Context, matchID string) (*models.MatchStatsResponse, error)
	GetPlayerRanking(ctx context.Context, game, region, playerID string) (*models.PlayerRanking, error)
	Close()
}

// SessionFactory opens one upstream session per lookup.
type SessionFactory func() FaceitSession

// PlayerStatsService is the single operation the presentation layer consumes.
type PlayerStatsService interface {
	GetPlayerStats(ctx context.Context, nickname, region string) (*models.AggregateResult, error)
}

package logic

import (
	"context"
	"sync/atomic"

	"github.com/openfrag/faceit-stats/internal/models"
)

// MockSession implements FaceitSession for testing
type MockSession struct {
	GetPlayerFunc        func(ctx context.Context, nickname string) (*models.Player, error)
	GetMatchHistoryFunc  func(ctx context.Context, playerID, game string, limit int) (*models.MatchHistory, error)
	GetMatchStatsFunc    func(ctx context.Context, matchID string) (*models.MatchStatsResponse, error)
	GetPlayerRankingFunc func(ctx context.Context, game, region, playerID string) (*models.PlayerRanking, error)

	PlayerCalls int32
	Closed      int32
}

func (m *MockSession) GetPlayer(ctx context.Context, nickname string) (*models.Player, error) {
	atomic.AddInt32(&m.PlayerCalls, 1)
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(ctx, nickname)
	}
	return &models.Player{}, nil
}

func (m *MockSession) GetMatchHistory(ctx context.Context, playerID, game string, limit int) (*models.MatchHistory, error) {
	if m.GetMatchHistoryFunc != nil {
		return m.GetMatchHistoryFunc(ctx, playerID, game, limit)
	}
	return &models.MatchHistory{}, nil
}

func (m *MockSession) GetMatchStats(ctx context.Context, matchID string) (*models.MatchStatsResponse, error) {
	if m.GetMatchStatsFunc != nil {
		return m.GetMatchStatsFunc(ctx, matchID)
	}
	return &models.MatchStatsResponse{}, nil
}

func (m *MockSession) GetPlayerRanking(ctx context.Context, game, region, playerID string) (*models.PlayerRanking, error) {
	if m.GetPlayerRankingFunc != nil {
		return m.GetPlayerRankingFunc(ctx, game, region, playerID)
	}
	return &models.PlayerRanking{}, nil
}

func (m *MockSession) Close() { atomic.AddInt32(&m.Closed, 1) }

func intPtr(v int) *int { return &v }

func playerWithElo(id string, elo int) *models.Player {
	return &models.Player{
		PlayerID: id,
		Games:    map[string]models.GameProfile{"cs2": {FaceitElo: intPtr(elo)}},
	}
}

func historyOf(ids ...string) *models.MatchHistory {
	h := &models.MatchHistory{}
	for _, id := range ids {
		h.Items = append(h.Items, models.MatchHistoryItem{MatchID: id})
	}
	return h
}

// matchWith builds a single-round match containing one player with the
// given stats plus a filler opponent.
func matchWith(playerID string, s models.PlayerStats) *models.MatchStatsResponse {
	return &models.MatchStatsResponse{
		Rounds: []models.MatchRound{{
			Teams: []models.MatchTeam{
				{Players: []models.MatchPlayer{{PlayerID: "someone-else", PlayerStats: models.PlayerStats{Kills: 99}}}},
				{Players: []models.MatchPlayer{{PlayerID: playerID, PlayerStats: s}}},
			},
		}},
	}
}

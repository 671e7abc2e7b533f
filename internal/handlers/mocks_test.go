package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/openfrag/faceit-stats/internal/models"
)

// MockPlayerStatsService implements logic.PlayerStatsService for testing
type MockPlayerStatsService struct {
	GetPlayerStatsFunc func(ctx context.Context, nickname, region string) (*models.AggregateResult, error)
}

func (m *MockPlayerStatsService) GetPlayerStats(ctx context.Context, nickname, region string) (*models.AggregateResult, error) {
	if m.GetPlayerStatsFunc != nil {
		return m.GetPlayerStatsFunc(ctx, nickname, region)
	}
	return &models.AggregateResult{Nickname: nickname, Region: region}, nil
}

func newTestHandler(svc *MockPlayerStatsService) *Handler {
	return New(Config{
		PlayerStats: svc,
		Logger:      zap.NewNop(),
	})
}

func zapNop() *zap.Logger { return zap.NewNop() }

func intPtr(v int) *int { return &v }

func sampleResult(nickname, region string) *models.AggregateResult {
	return &models.AggregateResult{
		Nickname:        nickname,
		Elo:             2150,
		AvgKills:        15,
		KDRatio:         1.5,
		HSPercentage:    34,
		Rank:            intPtr(1234),
		Region:          region,
		Ace:             1,
		KnifeKills:      1,
		MatchesAnalyzed: 2,
	}
}

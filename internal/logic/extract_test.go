package logic

import (
	"testing"

	"github.com/openfrag/faceit-stats/internal/models"
)

func TestExtractPlayerStat(t *testing.T) {
	stats := models.PlayerStats{Kills: 20, Deaths: 10, Headshots: 10, KDRatio: 2, PentaKills: 1, KnifeKills: 2}

	tests := []struct {
		name string
		resp *models.MatchStatsResponse
		want *models.MatchStat
	}{
		{
			name: "nil response",
			resp: nil,
		},
		{
			name: "zero rounds",
			resp: &models.MatchStatsResponse{},
		},
		{
			name: "first round without teams",
			resp: &models.MatchStatsResponse{Rounds: []models.MatchRound{{}}},
		},
		{
			name: "player not in match",
			resp: matchWith("P2", stats),
		},
		{
			name: "player on second team",
			resp: matchWith("P1", stats),
			want: &models.MatchStat{Kills: 20, Deaths: 10, Headshots: 10, KDRatio: 2, Ace: 1, KnifeKills: 2},
		},
		{
			name: "only first round is scanned",
			resp: &models.MatchStatsResponse{Rounds: []models.MatchRound{
				{Teams: []models.MatchTeam{{Players: []models.MatchPlayer{{PlayerID: "P9"}}}}},
				matchWith("P1", stats).Rounds[0],
			}},
		},
		{
			name: "missing fields default to zero",
			resp: matchWith("P1", models.PlayerStats{Kills: 3}),
			want: &models.MatchStat{Kills: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPlayerStat(tt.resp, "P1")
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected absent, got %+v", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %+v, got absent", *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("got %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

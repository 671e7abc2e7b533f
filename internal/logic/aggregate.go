package logic

import (
	"math"

	"github.com/openfrag/faceit-stats/internal/models"
)

// Aggregate summarises a set of matches. All averages are zero for an empty
// input. KD is the mean of the per-match ratios, not total kills over total
// deaths. The headshot percentage is not clamped: malformed input with more
// headshots than kills yields a value above 100.
func Aggregate(stats []models.MatchStat) models.Aggregate {
	var agg models.Aggregate
	if len(stats) == 0 {
		return agg
	}

	var kills, headshots int
	var kdSum float64
	for _, s := range stats {
		kills += s.Kills
		headshots += s.Headshots
		kdSum += s.KDRatio
		agg.TotalAce += s.Ace
		agg.TotalKnifeKills += s.KnifeKills
	}

	n := float64(len(stats))
	agg.Matches = len(stats)
	agg.AvgKills = float64(kills) / n
	agg.AvgKD = kdSum / n
	if kills > 0 {
		// Multiply before dividing so whole percentages stay exact for Ceil
		agg.HSPercentage = float64(headshots*100) / float64(kills)
	}
	return agg
}

// Summarize applies display rounding and fills the result. Average kills
// rounds half away from zero, KD keeps two decimals and the headshot
// percentage is rounded up.
func Summarize(nickname, region string, elo int, rank *int, agg models.Aggregate) *models.AggregateResult {
	return &models.AggregateResult{
		Nickname:        nickname,
		Elo:             elo,
		AvgKills:        int(math.Round(agg.AvgKills)),
		KDRatio:         math.Round(agg.AvgKD*100) / 100,
		HSPercentage:    int(math.Ceil(agg.HSPercentage)),
		Rank:            rank,
		Region:          region,
		Ace:             agg.TotalAce,
		KnifeKills:      agg.TotalKnifeKills,
		MatchesAnalyzed: agg.Matches,
	}
}

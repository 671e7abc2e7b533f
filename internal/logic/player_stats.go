package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openfrag/faceit-stats/internal/models"
	"github.com/openfrag/faceit-stats/internal/worker"
)

// StatsConfig configures the player stats pipeline.
type StatsConfig struct {
	Sessions SessionFactory
	Logger   *zap.Logger
	Game     string
	// DefaultRegion is used when a lookup does not name a region.
	DefaultRegion string
	HistoryLimit  int
	// MaxConcurrency caps parallel match extractions; 0 means no cap.
	MaxConcurrency int
	// Timeout is the overall deadline of one lookup; 0 disables it.
	Timeout time.Duration
}

type playerStatsService struct {
	sessions       SessionFactory
	logger         *zap.SugaredLogger
	game           string
	defaultRegion  string
	historyLimit   int
	maxConcurrency int
	timeout        time.Duration
}

func NewPlayerStatsService(cfg StatsConfig) PlayerStatsService {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Game == "" {
		cfg.Game = DefaultGame
	}
	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = DefaultRegion
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}

	return &playerStatsService{
		sessions:       cfg.Sessions,
		logger:         cfg.Logger.Sugar(),
		game:           cfg.Game,
		defaultRegion:  cfg.DefaultRegion,
		historyLimit:   cfg.HistoryLimit,
		maxConcurrency: cfg.MaxConcurrency,
		timeout:        cfg.Timeout,
	}
}

// GetPlayerStats resolves the nickname, aggregates the recent matches and
// attaches elo and regional rank.
//
// Errors match ErrPlayerNotFound when the nickname does not resolve and
// ErrNoMatchData when there is nothing to aggregate. Elo and rank failures
// degrade to 0 and nil.
func (s *playerStatsService) GetPlayerStats(ctx context.Context, nickname, region string) (*models.AggregateResult, error) {
	start := time.Now()
	defer func() { lookupDuration.Observe(time.Since(start).Seconds()) }()

	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = s.defaultRegion
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	lookupID := uuid.NewString()
	log := s.logger.With("lookup_id", lookupID, "nickname", nickname, "region", region)

	sess := s.sessions()
	defer sess.Close()

	// 1. Resolve player
	identity, err := s.resolvePlayer(ctx, sess, nickname)
	if err != nil {
		statLookups.WithLabelValues(outcomePlayerNotFound).Inc()
		log.Infow("Player not found")
		return nil, err
	}
	log = log.With("player_id", identity.PlayerID)

	// 2. Recent matches
	matchIDs, err := s.listRecentMatches(ctx, sess, identity.PlayerID)
	if err != nil {
		statLookups.WithLabelValues(outcomeNoMatchData).Inc()
		log.Warnw("Match history fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrNoMatchData, err)
	}
	if len(matchIDs) == 0 {
		statLookups.WithLabelValues(outcomeNoMatchData).Inc()
		log.Infow("Player has no recent matches")
		return nil, fmt.Errorf("%w: %s has no recent matches", ErrNoMatchData, nickname)
	}

	// 3. Per-match stats, fanned out
	matchStats := s.collectMatchStats(ctx, sess, identity.PlayerID, matchIDs, log)
	if len(matchStats) == 0 {
		statLookups.WithLabelValues(outcomeNoMatchData).Inc()
		log.Infow("No match stats could be extracted", "matches", len(matchIDs))
		return nil, fmt.Errorf("%w: no stats in %d matches for %s", ErrNoMatchData, len(matchIDs), nickname)
	}

	// 4. Aggregate
	agg := Aggregate(matchStats)

	// 5. Elo
	elo, err := s.getElo(ctx, sess, nickname)
	if err != nil {
		log.Warnw("ELO lookup failed, reporting 0", "error", err)
	}

	// 6. Rank
	rank, err := s.getRank(ctx, sess, identity.PlayerID, region)
	if err != nil {
		log.Warnw("Rank lookup failed, reporting none", "error", err)
		rank = nil
	}

	result := Summarize(nickname, region, elo, rank, agg)
	result.LookupID = lookupID

	statLookups.WithLabelValues(outcomeOK).Inc()
	log.Infow("Player stats computed",
		"matches", agg.Matches,
		"avg_kills", result.AvgKills,
		"kd_ratio", result.KDRatio,
		"hs_percentage", result.HSPercentage,
		"duration", time.Since(start),
	)
	return result, nil
}

// collectMatchStats extracts the player's stats from every match in
// parallel. Failed and absent matches are left out.
func (s *playerStatsService) collectMatchStats(ctx context.Context, sess FaceitSession, playerID string, matchIDs []string, log *zap.SugaredLogger) []models.MatchStat {
	results := worker.Map(ctx, matchIDs, s.maxConcurrency,
		func(ctx context.Context, matchID string) (*models.MatchStat, error) {
			return s.extractStats(ctx, sess, matchID, playerID)
		},
		func(matchID string, err error) {
			matchExtractions.WithLabelValues("failed").Inc()
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				log.Warnw("Match extraction cancelled", "match_id", matchID, "error", err)
				return
			}
			log.Warnw("Match extraction failed, skipping", "match_id", matchID, "error", err)
		},
	)

	stats := make([]models.MatchStat, 0, len(results))
	for _, r := range results {
		if r != nil {
			stats = append(stats, *r)
		}
	}
	return stats
}

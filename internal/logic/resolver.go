package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/openfrag/faceit-stats/internal/models"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrNoMatchData    = errors.New("no match data")
)

// resolvePlayer maps a nickname to a player id and the current rating.
func (s *playerStatsService) resolvePlayer(ctx context.Context, sess FaceitSession, nickname string) (*models.PlayerIdentity, error) {
	p, err := sess.GetPlayer(ctx, nickname)
	if err != nil {
		s.logger.Warnw("Player lookup failed", "nickname", nickname, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrPlayerNotFound, nickname, err)
	}
	if p.PlayerID == "" {
		s.logger.Infow("Player lookup returned no player_id", "nickname", nickname)
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, nickname)
	}

	elo, _ := p.Elo(s.game)
	return &models.PlayerIdentity{PlayerID: p.PlayerID, Elo: elo}, nil
}

// getElo re-reads the player profile and returns the rating for the
// configured game. A missing rating is 0 with a nil error; an upstream
// failure is 0 with the error so callers can tell the two apart.
func (s *playerStatsService) getElo(ctx context.Context, sess FaceitSession, nickname string) (int, error) {
	p, err := sess.GetPlayer(ctx, nickname)
	if err != nil {
		return 0, fmt.Errorf("elo %s: %w", nickname, err)
	}

	elo, ok := p.Elo(s.game)
	if !ok {
		s.logger.Infow("ELO not found for player", "nickname", nickname, "game", s.game)
		return 0, nil
	}
	return elo, nil
}

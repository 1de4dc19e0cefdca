package planner

import (
	"context"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
)

// TrackCoin re-enables tracking of a coin so it counts towards balances
// again.
func (s *Service) TrackCoin(
	ctx context.Context, coinID string,
) (*domain.SubmitResult, error) {
	return s.toggleTracking(ctx, coinID, true)
}

// UntrackCoin hides a coin from balance calculations.
func (s *Service) UntrackCoin(
	ctx context.Context, coinID string,
) (*domain.SubmitResult, error) {
	return s.toggleTracking(ctx, coinID, false)
}

func (s *Service) toggleTracking(
	ctx context.Context, coinID string, track bool,
) (*domain.SubmitResult, error) {
	if err := s.ensureUnlocked(ctx); err != nil {
		return nil, err
	}

	res, err := s.node.Operation().TrackCoin(ctx, coinID, track)
	if err != nil {
		return nil, domain.WrapOpError(
			domain.ErrKindUntrack, "failed to toggle coin tracking", err,
		)
	}
	res, err = interpretSubmit(res)
	if err != nil {
		return nil, err
	}

	coin, lookupErr := s.node.Query().CoinByID(ctx, coinID)
	tokenID := ""
	if lookupErr == nil {
		tokenID = coin.TokenID
	}
	s.recordOperation(ctx, domain.OperationTrack, tokenID, "", res)
	return res, nil
}

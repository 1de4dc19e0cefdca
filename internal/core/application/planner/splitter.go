package planner

import (
	"context"
	"fmt"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
)

// Split submits a split operation in one of its three modes. Validation,
// including the output-count ceiling of custom splits, happens before any
// node command is issued.
func (s *Service) Split(
	ctx context.Context, req domain.SplitRequest,
) (*domain.SubmitResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureUnlocked(ctx); err != nil {
		return nil, err
	}
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	var params ports.SendParams
	switch req.Type {
	case domain.SplitTotal, domain.SplitPerCoin:
		// Both even modes send to one newly generated self-address; they
		// differ only in how the total amount is derived.
		address, err := s.node.Operation().NewAddress(ctx)
		if err != nil {
			return nil, fmt.Errorf("error getting address: %w", err)
		}
		params = ports.SendParams{
			TokenID: req.TokenID,
			Amount:  req.SendAmount().String(),
			Address: address,
			Split:   req.NumberOfCoins,
		}
	case domain.SplitCustom:
		multi := make([]string, 0, len(req.Splits))
		for _, split := range req.Splits {
			multi = append(
				multi, fmt.Sprintf("%s:%s", split.Address, split.Amount.String()),
			)
		}
		params = ports.SendParams{
			TokenID: req.TokenID,
			Multi:   multi,
			Split:   req.SplitAmount,
		}
	default:
		return nil, domain.ErrInvalidSplitType
	}

	res, err := s.node.Operation().Send(ctx, params)
	if err != nil {
		return nil, domain.WrapOpError(
			domain.ErrKindConsolidation, "failed to split coins", err,
		)
	}
	res, err = interpretSubmit(res)
	if err != nil {
		return nil, err
	}

	s.recordOperation(ctx, domain.OperationSplit, req.TokenID, "", res)
	return res, nil
}

package planner

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/thanhpk/randstr"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
)

// MaxTxPowSize is the ceiling on the encoded size of a transaction the
// network still propagates.
const MaxTxPowSize = 64000

// CheckConsolidation dry-runs the consolidation first and submits the real
// one only if the resulting transaction would fit the network size ceiling.
// No funds are moved by the dry run.
func (s *Service) CheckConsolidation(
	ctx context.Context, req domain.ConsolidationRequest,
) (*domain.SubmitResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureUnlocked(ctx); err != nil {
		return nil, err
	}

	dryRun, err := s.node.Operation().Consolidate(
		ctx, consolidateParams(req, true),
	)
	if err != nil {
		return nil, domain.WrapOpError(
			domain.ErrKindConsolidation, "error checking consolidation", err,
		)
	}
	if dryRun.ErrText != "" {
		return nil, domain.WrapOpError(
			domain.ErrKindConsolidation, "error checking consolidation",
			fmt.Errorf(dryRun.ErrText),
		)
	}
	if dryRun.Size > MaxTxPowSize {
		return nil, domain.NewOpError(domain.ErrKindTxPowTooBig, "txpow is too big")
	}

	return s.Consolidate(ctx, req)
}

// Consolidate submits the real consolidation after the configured delay.
func (s *Service) Consolidate(
	ctx context.Context, req domain.ConsolidationRequest,
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

	res, err := s.node.Operation().Consolidate(
		ctx, consolidateParams(req, false),
	)
	if err != nil {
		return nil, domain.WrapOpError(
			domain.ErrKindConsolidation, "failed to consolidate coins", err,
		)
	}
	res, err = interpretSubmit(res)
	if err != nil {
		return nil, err
	}

	s.recordOperation(ctx, domain.OperationConsolidate, req.TokenID, "", res)
	return res, nil
}

// ManualConsolidate assembles an explicit transaction spending exactly the
// listed coins into a single output for their exact decimal total. The
// destination is the first coin's owning address, resolved to its canonical
// sendable form. Steps are strictly sequential; a failure aborts the rest
// and the dangling transaction context is deleted best-effort.
func (s *Service) ManualConsolidate(
	ctx context.Context, req domain.ManualConsolidationRequest,
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

	operation := s.node.Operation()
	txnID := "manual-consolidation-" + randstr.Hex(8)

	if err := operation.TxnCreate(ctx, txnID); err != nil {
		return nil, fmt.Errorf("creating txn %s: %w", txnID, err)
	}

	res, err := s.assembleManualTxn(ctx, txnID, req)
	if err != nil {
		// The node is left with a dangling transaction context otherwise.
		if cleanupErr := operation.TxnDelete(ctx, txnID); cleanupErr != nil {
			log.WithError(cleanupErr).Warnf(
				"planner: failed to clean up dangling txn %s", txnID,
			)
		}
		return nil, err
	}

	res, err = interpretSubmit(res)
	if err != nil {
		return nil, err
	}

	s.recordOperation(
		ctx, domain.OperationManualConsolidate, req.TokenID, txnID, res,
	)
	return res, nil
}

func (s *Service) assembleManualTxn(
	ctx context.Context, txnID string, req domain.ManualConsolidationRequest,
) (*domain.SubmitResult, error) {
	query := s.node.Query()
	operation := s.node.Operation()

	total := decimal.Zero
	for _, coinID := range req.CoinIDs {
		coin, err := query.CoinByID(ctx, coinID)
		if err != nil {
			return nil, domain.WrapOpError(
				domain.ErrKindCoinNotFound,
				fmt.Sprintf("looking up coin %s", coinID), err,
			)
		}
		if req.TokenID != "" && coin.TokenID != req.TokenID {
			return nil, domain.ErrCoinNotOwnedByToken
		}
		total = total.Add(coin.EffectiveAmount())

		if err := operation.TxnInput(ctx, txnID, coinID); err != nil {
			return nil, fmt.Errorf("attaching coin %s as input: %w", coinID, err)
		}
	}

	first, err := query.CoinByID(ctx, req.CoinIDs[0])
	if err != nil {
		return nil, domain.WrapOpError(
			domain.ErrKindCoinNotFound,
			fmt.Sprintf("looking up destination coin %s", req.CoinIDs[0]), err,
		)
	}

	address, err := operation.CheckAddress(ctx, first.Address)
	if err != nil {
		return nil, fmt.Errorf("resolving address %s: %w", first.Address, err)
	}

	if err := operation.TxnOutput(
		ctx, txnID, address, total.String(), first.TokenID,
	); err != nil {
		return nil, fmt.Errorf("attaching output for %s: %w", total.String(), err)
	}

	res, err := operation.TxnSign(ctx, txnID)
	if err != nil {
		return nil, fmt.Errorf("signing txn %s: %w", txnID, err)
	}
	return res, nil
}

func consolidateParams(
	req domain.ConsolidationRequest, dryRun bool,
) ports.ConsolidateParams {
	// The dry run uses the same parameter mapping as the real submission:
	// coinage carries the confirmation depth, maxsigs the signature cap.
	return ports.ConsolidateParams{
		TokenID:  req.TokenID,
		Coinage:  req.MinConfirmations,
		MaxCoins: req.MaxInputs,
		Burn:     req.Burn,
		MaxSigs:  req.MaxSignatures,
		DryRun:   dryRun,
	}
}

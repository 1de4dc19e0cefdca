package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/coinfold-network/coinfold-daemon/internal/core/application/ledger"
	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
)

// DefaultSubmitDelay is the artificial pause before submitting a mutating
// operation, avoiding a race with the node's own coin-selection view right
// after a balance change.
const DefaultSubmitDelay = 3 * time.Second

// Service plans and submits consolidations and splits against the wallet
// node. Submissions are serialized by the caller per token; operations on
// different tokens are independent.
type Service struct {
	node        ports.NodeService
	repoManager domain.OperationRepository
	ledgerSvc   *ledger.Service
	submitDelay time.Duration
}

// NewService returns a planner over the given node bridge. A negative delay
// falls back to the default one; an explicit zero disables it (used in
// tests).
func NewService(
	node ports.NodeService, repoManager domain.OperationRepository,
	ledgerSvc *ledger.Service, submitDelay time.Duration,
) (*Service, error) {
	if node == nil {
		return nil, fmt.Errorf("missing node service")
	}
	if repoManager == nil {
		return nil, fmt.Errorf("missing operation repository")
	}
	if ledgerSvc == nil {
		return nil, fmt.Errorf("missing ledger service")
	}
	if submitDelay < 0 {
		submitDelay = DefaultSubmitDelay
	}
	return &Service{node, repoManager, ledgerSvc, submitDelay}, nil
}

// ensureUnlocked gates every mutating operation: a locked node cannot sign
// anything.
func (s *Service) ensureUnlocked(ctx context.Context) error {
	status, err := s.node.Query().Status(ctx)
	if err != nil {
		return err
	}
	if status.IsLocked() {
		return domain.ErrNodeLocked
	}
	return nil
}

// delay waits for the configured submit delay, aborting early if the
// context is canceled.
func (s *Service) delay(ctx context.Context) error {
	if s.submitDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.submitDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// interpretSubmit applies the shared pending-versus-error rule: an error
// without a pending uid is a failure, classified by the node's error text;
// anything else is handed to the reconciler as-is.
func interpretSubmit(res *domain.SubmitResult) (*domain.SubmitResult, error) {
	if res.ErrText != "" && !res.IsPending() {
		return nil, domain.ClassifySubmitError(res.ErrText)
	}
	return res, nil
}

// recordOperation persists the history record of a submitted operation and
// invalidates the ledger view of the affected token.
func (s *Service) recordOperation(
	ctx context.Context, kind domain.OperationKind, tokenID, txnID string,
	res *domain.SubmitResult,
) {
	operation := domain.Operation{
		ID:         uuid.NewString(),
		Kind:       kind,
		TokenID:    tokenID,
		TxnID:      txnID,
		PendingUID: res.PendingUID,
		Resolved:   !res.IsPending(),
		Accepted:   !res.IsPending(),
		Timestamp:  time.Now().Unix(),
	}
	if err := s.repoManager.AddOperation(ctx, operation); err != nil {
		log.WithError(err).Warnf(
			"planner: failed to store %s operation history", kind,
		)
	}
	s.ledgerSvc.Invalidate(tokenID)
}

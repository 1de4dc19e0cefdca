package reconciler

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/coinfold-network/coinfold-daemon/internal/core/application/ledger"
	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
)

// Service reconciles submitted operations to a terminal outcome. Pending
// operations are resolved exclusively by the node push-event stream; there
// is no timeout and no polling-based resolution, balance refreshes are only
// a cache-invalidation side effect.
type Service struct {
	bus         ports.EventBus
	repoManager domain.OperationRepository
	ledgerSvc   *ledger.Service
}

// NewService returns a reconciler subscribing to the given event bus.
func NewService(
	bus ports.EventBus, repoManager domain.OperationRepository,
	ledgerSvc *ledger.Service,
) (*Service, error) {
	if bus == nil {
		return nil, fmt.Errorf("missing event bus")
	}
	if repoManager == nil {
		return nil, fmt.Errorf("missing operation repository")
	}
	if ledgerSvc == nil {
		return nil, fmt.Errorf("missing ledger service")
	}
	return &Service{bus, repoManager, ledgerSvc}, nil
}

// Resolve tracks a submit result to its terminal outcome. Immediate results
// resolve right away; pending ones wait for the matching approval event.
// Canceling the context abandons the tracking without affecting the
// node-side operation, which still completes on its own.
func (s *Service) Resolve(
	ctx context.Context, tokenID string, res *domain.SubmitResult,
) (domain.Outcome, error) {
	tracker := NewTracker()
	tracker.Attach(res)

	if tracker.Status().IsTerminal() {
		s.ledgerSvc.Invalidate(tokenID)
		return tracker.Outcome(), nil
	}

	// Subscribe before checking anything else so no event can slip between
	// the pending response and the subscription.
	events, cancel := s.bus.Subscribe()
	defer cancel()

	log.Debugf(
		"reconciler: awaiting approval of operation %s", res.PendingUID,
	)

	for {
		select {
		case <-ctx.Done():
			return tracker.Outcome(), ctx.Err()
		case event, ok := <-events:
			if !ok {
				return tracker.Outcome(), fmt.Errorf("event stream closed")
			}
			if !tracker.Apply(event) {
				continue
			}

			accepted := tracker.Status() == domain.StatusResolvedSuccess
			if err := s.repoManager.ResolveOperation(
				ctx, res.PendingUID, accepted,
			); err != nil {
				log.WithError(err).Warnf(
					"reconciler: failed to mark operation %s resolved",
					res.PendingUID,
				)
			}
			s.ledgerSvc.Invalidate(tokenID)
			return tracker.Outcome(), nil
		}
	}
}

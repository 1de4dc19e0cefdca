package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
	"github.com/coinfold-network/coinfold-daemon/pkg/circuitbreaker"
)

// DefaultRefreshInterval is how often cached snapshots are re-fetched from
// the node.
const DefaultRefreshInterval = 5 * time.Second

// Service is the read-only projection of a token's coins and balances. It
// keeps one snapshot per token, refreshed periodically and invalidated by
// any successful mutating operation. On a fetch failure the stale snapshot
// is evicted rather than served: callers must fail closed and render no
// action controls without a snapshot.
type Service struct {
	query           ports.NodeQuery
	refreshInterval time.Duration
	cb              *gobreaker.CircuitBreaker

	mtx       sync.RWMutex
	snapshots map[string]*Snapshot
}

// NewService returns a ledger view over the given node queries. A
// non-positive refresh interval falls back to the default one.
func NewService(query ports.NodeQuery, refreshInterval time.Duration) (*Service, error) {
	if query == nil {
		return nil, fmt.Errorf("missing node query service")
	}
	if refreshInterval <= 0 {
		refreshInterval = DefaultRefreshInterval
	}
	return &Service{
		query:           query,
		refreshInterval: refreshInterval,
		cb:              circuitbreaker.NewCircuitBreaker(),
		snapshots:       make(map[string]*Snapshot),
	}, nil
}

// Snapshot returns the current snapshot for the token, fetching it from the
// node if no cached one exists.
func (s *Service) Snapshot(ctx context.Context, tokenID string) (*Snapshot, error) {
	s.mtx.RLock()
	cached := s.snapshots[tokenID]
	s.mtx.RUnlock()
	if cached != nil {
		return cached, nil
	}
	return s.Refresh(ctx, tokenID)
}

// Refresh fetches a fresh snapshot for the token, replacing any cached one.
// Balance, coins and token metadata are independent queries and are fetched
// concurrently. On any failure the cached snapshot is evicted.
func (s *Service) Refresh(ctx context.Context, tokenID string) (*Snapshot, error) {
	snapshot, err := s.fetch(ctx, tokenID)
	if err != nil {
		s.Invalidate(tokenID)
		return nil, err
	}

	s.mtx.Lock()
	s.snapshots[tokenID] = snapshot
	s.mtx.Unlock()
	return snapshot, nil
}

// Invalidate evicts the cached snapshot of the token. It must be called
// after every successful mutating operation on the token before the view is
// considered consistent again.
func (s *Service) Invalidate(tokenID string) {
	s.mtx.Lock()
	delete(s.snapshots, tokenID)
	s.mtx.Unlock()
}

// Start runs the periodic refresh loop for every token with a cached
// snapshot until the context is canceled.
func (s *Service) Start(ctx context.Context) {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, tokenID := range s.cachedTokens() {
				if _, err := s.Refresh(ctx, tokenID); err != nil {
					log.WithError(err).Warnf(
						"ledger: failed to refresh snapshot for token %s", tokenID,
					)
				}
			}
		}
	}
}

func (s *Service) cachedTokens() []string {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	tokens := make([]string, 0, len(s.snapshots))
	for tokenID := range s.snapshots {
		tokens = append(tokens, tokenID)
	}
	return tokens
}

func (s *Service) fetch(ctx context.Context, tokenID string) (*Snapshot, error) {
	var (
		balance *domain.Balance
		coins   domain.CoinList
		token   *domain.Token
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.cb.Execute(func() (interface{}, error) {
			return s.query.BalanceForToken(gctx, tokenID)
		})
		if err != nil {
			return err
		}
		balance = res.(*domain.Balance)
		return nil
	})
	g.Go(func() error {
		res, err := s.cb.Execute(func() (interface{}, error) {
			return s.query.SendableCoinsForToken(gctx, tokenID)
		})
		if err != nil {
			return err
		}
		coins = res.(domain.CoinList)
		return nil
	})
	g.Go(func() error {
		res, err := s.cb.Execute(func() (interface{}, error) {
			return s.query.Token(gctx, tokenID)
		})
		if err != nil {
			return err
		}
		token = res.(*domain.Token)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newSnapshot(tokenID, token, balance, coins), nil
}

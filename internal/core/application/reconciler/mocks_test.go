package reconciler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
)

// **** EventBus ****

type stubEventBus struct {
	events chan domain.NodeEvent
}

func newStubEventBus() *stubEventBus {
	return &stubEventBus{events: make(chan domain.NodeEvent, 16)}
}

func (b *stubEventBus) Subscribe() (<-chan domain.NodeEvent, func()) {
	return b.events, func() {}
}

func (b *stubEventBus) Publish(event domain.NodeEvent) {
	b.events <- event
}

// **** OperationRepository ****

type mockOperationRepository struct {
	mock.Mock
}

func (m *mockOperationRepository) AddOperation(
	ctx context.Context, operation domain.Operation,
) error {
	args := m.Called(ctx, operation)
	return args.Error(0)
}

func (m *mockOperationRepository) GetOperationByPendingUID(
	ctx context.Context, pendingUID string,
) (*domain.Operation, error) {
	args := m.Called(ctx, pendingUID)

	var res *domain.Operation
	if a := args.Get(0); a != nil {
		res = a.(*domain.Operation)
	}
	return res, args.Error(1)
}

func (m *mockOperationRepository) ResolveOperation(
	ctx context.Context, pendingUID string, accepted bool,
) error {
	args := m.Called(ctx, pendingUID, accepted)
	return args.Error(0)
}

func (m *mockOperationRepository) ListOperations(
	ctx context.Context,
) ([]domain.Operation, error) {
	args := m.Called(ctx)

	var res []domain.Operation
	if a := args.Get(0); a != nil {
		res = a.([]domain.Operation)
	}
	return res, args.Error(1)
}

func (m *mockOperationRepository) ListOperationsForToken(
	ctx context.Context, tokenID string,
) ([]domain.Operation, error) {
	args := m.Called(ctx, tokenID)

	var res []domain.Operation
	if a := args.Get(0); a != nil {
		res = a.([]domain.Operation)
	}
	return res, args.Error(1)
}

// **** NodeQuery ****

// stubNodeQuery satisfies the ledger dependency; the reconciler only ever
// invalidates cached snapshots, it never fetches.
type stubNodeQuery struct{}

func (stubNodeQuery) Balance(context.Context) ([]domain.Balance, error) {
	return nil, nil
}
func (stubNodeQuery) BalanceForToken(context.Context, string) (*domain.Balance, error) {
	return nil, nil
}
func (stubNodeQuery) Coins(context.Context) (domain.CoinList, error) {
	return nil, nil
}
func (stubNodeQuery) SendableCoinsForToken(context.Context, string) (domain.CoinList, error) {
	return nil, nil
}
func (stubNodeQuery) TrackableCoins(context.Context) (domain.CoinList, error) {
	return nil, nil
}
func (stubNodeQuery) CoinByID(context.Context, string) (*domain.Coin, error) {
	return nil, nil
}
func (stubNodeQuery) Token(context.Context, string) (*domain.Token, error) {
	return nil, nil
}
func (stubNodeQuery) Status(context.Context) (ports.NodeStatus, error) {
	return nil, nil
}

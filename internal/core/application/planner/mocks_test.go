package planner_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
)

// **** NodeService ****

type mockNodeService struct {
	query     *mockNodeQuery
	operation *mockNodeOperation
}

func newMockNodeService() *mockNodeService {
	return &mockNodeService{
		query:     &mockNodeQuery{},
		operation: &mockNodeOperation{},
	}
}

func (m *mockNodeService) Query() ports.NodeQuery { return m.query }

func (m *mockNodeService) Operation() ports.NodeOperation { return m.operation }

func (m *mockNodeService) Notification() ports.NodeNotification { return nil }

func (m *mockNodeService) Close() {}

// **** NodeQuery ****

type mockNodeQuery struct {
	mock.Mock
}

func (m *mockNodeQuery) Balance(ctx context.Context) ([]domain.Balance, error) {
	args := m.Called(ctx)

	var res []domain.Balance
	if a := args.Get(0); a != nil {
		res = a.([]domain.Balance)
	}
	return res, args.Error(1)
}

func (m *mockNodeQuery) BalanceForToken(
	ctx context.Context, tokenID string,
) (*domain.Balance, error) {
	args := m.Called(ctx, tokenID)

	var res *domain.Balance
	if a := args.Get(0); a != nil {
		res = a.(*domain.Balance)
	}
	return res, args.Error(1)
}

func (m *mockNodeQuery) Coins(ctx context.Context) (domain.CoinList, error) {
	args := m.Called(ctx)

	var res domain.CoinList
	if a := args.Get(0); a != nil {
		res = a.(domain.CoinList)
	}
	return res, args.Error(1)
}

func (m *mockNodeQuery) SendableCoinsForToken(
	ctx context.Context, tokenID string,
) (domain.CoinList, error) {
	args := m.Called(ctx, tokenID)

	var res domain.CoinList
	if a := args.Get(0); a != nil {
		res = a.(domain.CoinList)
	}
	return res, args.Error(1)
}

func (m *mockNodeQuery) TrackableCoins(ctx context.Context) (domain.CoinList, error) {
	args := m.Called(ctx)

	var res domain.CoinList
	if a := args.Get(0); a != nil {
		res = a.(domain.CoinList)
	}
	return res, args.Error(1)
}

func (m *mockNodeQuery) CoinByID(
	ctx context.Context, coinID string,
) (*domain.Coin, error) {
	args := m.Called(ctx, coinID)

	var res *domain.Coin
	if a := args.Get(0); a != nil {
		res = a.(*domain.Coin)
	}
	return res, args.Error(1)
}

func (m *mockNodeQuery) Token(
	ctx context.Context, tokenID string,
) (*domain.Token, error) {
	args := m.Called(ctx, tokenID)

	var res *domain.Token
	if a := args.Get(0); a != nil {
		res = a.(*domain.Token)
	}
	return res, args.Error(1)
}

func (m *mockNodeQuery) Status(ctx context.Context) (ports.NodeStatus, error) {
	args := m.Called(ctx)

	var res ports.NodeStatus
	if a := args.Get(0); a != nil {
		res = a.(ports.NodeStatus)
	}
	return res, args.Error(1)
}

// **** NodeOperation ****

type mockNodeOperation struct {
	mock.Mock
}

func (m *mockNodeOperation) Consolidate(
	ctx context.Context, params ports.ConsolidateParams,
) (*domain.SubmitResult, error) {
	args := m.Called(ctx, params)

	var res *domain.SubmitResult
	if a := args.Get(0); a != nil {
		res = a.(*domain.SubmitResult)
	}
	return res, args.Error(1)
}

func (m *mockNodeOperation) Send(
	ctx context.Context, params ports.SendParams,
) (*domain.SubmitResult, error) {
	args := m.Called(ctx, params)

	var res *domain.SubmitResult
	if a := args.Get(0); a != nil {
		res = a.(*domain.SubmitResult)
	}
	return res, args.Error(1)
}

func (m *mockNodeOperation) TxnCreate(ctx context.Context, txnID string) error {
	args := m.Called(ctx, txnID)
	return args.Error(0)
}

func (m *mockNodeOperation) TxnInput(ctx context.Context, txnID, coinID string) error {
	args := m.Called(ctx, txnID, coinID)
	return args.Error(0)
}

func (m *mockNodeOperation) TxnOutput(
	ctx context.Context, txnID, address, amount, tokenID string,
) error {
	args := m.Called(ctx, txnID, address, amount, tokenID)
	return args.Error(0)
}

func (m *mockNodeOperation) TxnSign(
	ctx context.Context, txnID string,
) (*domain.SubmitResult, error) {
	args := m.Called(ctx, txnID)

	var res *domain.SubmitResult
	if a := args.Get(0); a != nil {
		res = a.(*domain.SubmitResult)
	}
	return res, args.Error(1)
}

func (m *mockNodeOperation) TxnDelete(ctx context.Context, txnID string) error {
	args := m.Called(ctx, txnID)
	return args.Error(0)
}

func (m *mockNodeOperation) TrackCoin(
	ctx context.Context, coinID string, track bool,
) (*domain.SubmitResult, error) {
	args := m.Called(ctx, coinID, track)

	var res *domain.SubmitResult
	if a := args.Get(0); a != nil {
		res = a.(*domain.SubmitResult)
	}
	return res, args.Error(1)
}

func (m *mockNodeOperation) NewAddress(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockNodeOperation) CheckAddress(
	ctx context.Context, address string,
) (string, error) {
	args := m.Called(ctx, address)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockNodeService) expectUnlockedNode() {
	m.query.On("Status", mock.Anything).Return(mockNodeStatus{locked: false}, nil)
}

// **** NodeStatus ****

type mockNodeStatus struct {
	locked bool
}

func (m mockNodeStatus) IsLocked() bool     { return m.locked }
func (m mockNodeStatus) GetVersion() string { return "1.0.0-test" }
func (m mockNodeStatus) GetBlock() uint64   { return 1000 }

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

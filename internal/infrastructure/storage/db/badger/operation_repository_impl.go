package dbbadger

import (
	"context"
	"sort"

	"github.com/timshannon/badgerhold/v4"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
)

type operationRepositoryImpl struct {
	store *badgerhold.Store
}

// NewOperationRepositoryImpl initializes a badger implementation of the
// domain.OperationRepository.
func NewOperationRepositoryImpl(store *badgerhold.Store) domain.OperationRepository {
	return operationRepositoryImpl{store}
}

func (r operationRepositoryImpl) AddOperation(
	_ context.Context, operation domain.Operation,
) error {
	err := r.store.Insert(operation.Key(), &operation)
	if err == badgerhold.ErrKeyExists {
		return nil
	}
	return err
}

func (r operationRepositoryImpl) GetOperationByPendingUID(
	_ context.Context, pendingUID string,
) (*domain.Operation, error) {
	query := badgerhold.Where("PendingUID").Eq(pendingUID).
		And("Resolved").Eq(false)
	var operations []domain.Operation
	if err := r.store.Find(&operations, query); err != nil {
		return nil, err
	}
	if len(operations) == 0 {
		return nil, nil
	}
	return &operations[0], nil
}

func (r operationRepositoryImpl) ResolveOperation(
	ctx context.Context, pendingUID string, accepted bool,
) error {
	operation, err := r.GetOperationByPendingUID(ctx, pendingUID)
	if err != nil {
		return err
	}
	if operation == nil {
		return nil
	}
	operation.Resolve(accepted)
	return r.store.Update(operation.Key(), operation)
}

func (r operationRepositoryImpl) ListOperations(
	_ context.Context,
) ([]domain.Operation, error) {
	var operations []domain.Operation
	if err := r.store.Find(&operations, nil); err != nil {
		return nil, err
	}
	sortOperations(operations)
	return operations, nil
}

func (r operationRepositoryImpl) ListOperationsForToken(
	_ context.Context, tokenID string,
) ([]domain.Operation, error) {
	var operations []domain.Operation
	query := badgerhold.Where("TokenID").Eq(tokenID)
	if err := r.store.Find(&operations, query); err != nil {
		return nil, err
	}
	sortOperations(operations)
	return operations, nil
}

func sortOperations(operations []domain.Operation) {
	sort.Slice(operations, func(i, j int) bool {
		return operations[i].Timestamp > operations[j].Timestamp
	})
}

package domain

import "context"

// OperationRepository persists the history of submitted operations.
type OperationRepository interface {
	// AddOperation stores a new operation record.
	AddOperation(ctx context.Context, operation Operation) error
	// GetOperationByPendingUID returns the unresolved operation correlated
	// to the given pending uid, or nil if none is stored.
	GetOperationByPendingUID(ctx context.Context, pendingUID string) (*Operation, error)
	// ResolveOperation marks the operation correlated to the pending uid as
	// resolved with the given verdict.
	ResolveOperation(ctx context.Context, pendingUID string, accepted bool) error
	// ListOperations returns all stored operations, most recent first.
	ListOperations(ctx context.Context) ([]Operation, error)
	// ListOperationsForToken returns the operations of a token, most recent
	// first.
	ListOperationsForToken(ctx context.Context, tokenID string) ([]Operation, error)
}

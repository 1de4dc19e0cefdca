package domain

// OperationKind discriminates the mutating operations recorded in history.
type OperationKind string

const (
	// OperationConsolidate is an automatic, parameterized consolidation.
	OperationConsolidate OperationKind = "consolidate"
	// OperationManualConsolidate is an explicit coin-list consolidation.
	OperationManualConsolidate OperationKind = "manual_consolidate"
	// OperationSplit is a coin split in any of its modes.
	OperationSplit OperationKind = "split"
	// OperationTrack is a coin track/untrack toggle.
	OperationTrack OperationKind = "track"
)

// Operation is the history record of a submitted operation.
type Operation struct {
	ID         string
	Kind       OperationKind
	TokenID    string
	TxnID      string
	PendingUID string
	Resolved   bool
	Accepted   bool
	Timestamp  int64
}

// Key returns the unique storage key of the operation.
func (o Operation) Key() string {
	return o.ID
}

// Resolve marks the operation as terminally resolved with the given
// verdict. Resolving an already resolved operation is a no-op.
func (o *Operation) Resolve(accepted bool) {
	if o.Resolved {
		return
	}
	o.Resolved = true
	o.Accepted = accepted
}

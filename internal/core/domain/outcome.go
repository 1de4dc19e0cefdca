package domain

import "encoding/json"

// SubmitResult is the raw result of submitting an operation to the node.
// Exactly one of PendingUID and Txn is meaningful on success: a pending uid
// means a human must approve the operation in the node's pending surface,
// while Txn carries the completed transaction payload of a synchronous
// acceptance. ErrText holds the node's untyped error channel verbatim.
type SubmitResult struct {
	PendingUID string
	Txn        json.RawMessage
	Size       uint64
	ErrText    string
}

// IsPending returns whether the operation awaits an external approval.
func (r *SubmitResult) IsPending() bool {
	return r.PendingUID != ""
}

// OutcomeStatus is the state of a submitted operation's lifecycle.
type OutcomeStatus int

const (
	// StatusSubmitting means the request has been sent and no response has
	// been attached yet.
	StatusSubmitting OutcomeStatus = iota
	// StatusAwaitingApproval means the node returned a pending uid and the
	// operation waits for an out-of-band approval.
	StatusAwaitingApproval
	// StatusResolvedSuccess and StatusResolvedFailure are the terminal
	// states. They are never re-entered; a fresh operation starts a new
	// lifecycle.
	StatusResolvedSuccess
	StatusResolvedFailure
)

func (s OutcomeStatus) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusAwaitingApproval:
		return "awaiting_approval"
	case StatusResolvedSuccess:
		return "resolved_success"
	case StatusResolvedFailure:
		return "resolved_failure"
	default:
		return "unknown"
	}
}

// IsTerminal returns whether the status is one of the resolved states.
func (s OutcomeStatus) IsTerminal() bool {
	return s == StatusResolvedSuccess || s == StatusResolvedFailure
}

// Outcome is the terminal result of a submitted operation as surfaced to the
// caller.
type Outcome struct {
	Status     OutcomeStatus
	PendingUID string
	Txn        json.RawMessage
}

// NodeEvent is a push event emitted by the node. Pending resolution events
// correlate to a previously issued pending uid and carry the approval
// verdict.
type NodeEvent struct {
	Event  string
	UID    string
	Accept bool
	Status bool
}

// EventPending is the event name of pending approval resolutions.
const EventPending = "MDS_PENDING"

// IsPendingResolution returns whether the event resolves an operation
// awaiting approval.
func (e NodeEvent) IsPendingResolution() bool {
	return e.Event == EventPending && e.UID != ""
}

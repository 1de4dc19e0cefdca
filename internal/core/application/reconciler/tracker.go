package reconciler

import (
	"encoding/json"
	"sync"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
)

// Tracker is the lifecycle state machine of one submitted operation:
// Submitting moves to Immediate or AwaitingApproval when the submit result
// is attached, and AwaitingApproval resolves on the first push event whose
// uid matches the pending uid. Terminal states are never re-entered; later
// events with the same uid are ignored.
type Tracker struct {
	mtx        sync.Mutex
	status     domain.OutcomeStatus
	pendingUID string
	txn        json.RawMessage
}

// NewTracker returns a tracker in the Submitting state.
func NewTracker() *Tracker {
	return &Tracker{status: domain.StatusSubmitting}
}

// Attach moves the tracker out of Submitting based on the submit result: a
// pending uid means AwaitingApproval, a synchronous transaction payload
// resolves immediately.
func (t *Tracker) Attach(res *domain.SubmitResult) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.status != domain.StatusSubmitting {
		return
	}
	if res.IsPending() {
		t.status = domain.StatusAwaitingApproval
		t.pendingUID = res.PendingUID
		return
	}
	t.status = domain.StatusResolvedSuccess
	t.txn = res.Txn
}

// Apply feeds a push event to the tracker. It returns true only when the
// event transitioned the tracker to a terminal state.
func (t *Tracker) Apply(event domain.NodeEvent) bool {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.status != domain.StatusAwaitingApproval {
		return false
	}
	if !event.IsPendingResolution() || event.UID != t.pendingUID {
		return false
	}

	if event.Accept {
		t.status = domain.StatusResolvedSuccess
	} else {
		t.status = domain.StatusResolvedFailure
	}
	return true
}

// Status returns the current lifecycle state.
func (t *Tracker) Status() domain.OutcomeStatus {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.status
}

// Outcome returns the operation outcome as currently known.
func (t *Tracker) Outcome() domain.Outcome {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return domain.Outcome{
		Status:     t.status,
		PendingUID: t.pendingUID,
		Txn:        t.txn,
	}
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind is the tag attached to operation failures so that callers can
// branch on targeted messaging instead of parsing error text.
type ErrorKind string

const (
	// ErrKindConsolidation is a generic failure building or submitting a
	// consolidation or split.
	ErrKindConsolidation ErrorKind = "consolidation_error"
	// ErrKindTxPowTooBig means the encoded transaction exceeds the size the
	// network propagates; the user must retry with fewer inputs.
	ErrKindTxPowTooBig ErrorKind = "txpow_to_big"
	// ErrKindTooManyOutputs means a custom split exceeds the output ceiling.
	ErrKindTooManyOutputs ErrorKind = "too_many_outputs"
	// ErrKindCoinNotFound means a coin lookup failed during manual
	// consolidation.
	ErrKindCoinNotFound ErrorKind = "coin_not_found"
	// ErrKindUntrack is a failure toggling coin tracking.
	ErrKindUntrack ErrorKind = "untrack_error"
	// ErrKindNodeLocked means the node requires an unlock before any
	// mutating operation.
	ErrKindNodeLocked ErrorKind = "node_locked"
	// ErrKindServer is the default tag for anything unclassified.
	ErrKindServer ErrorKind = "server_error"
)

var (
	// ErrNoCoinsToConsolidate is thrown when a manual consolidation carries
	// an empty coin list.
	ErrNoCoinsToConsolidate = errors.New("no coins to consolidate")
	// ErrDuplicatedCoins is thrown when a manual consolidation lists the
	// same coin more than once.
	ErrDuplicatedCoins = errors.New("coin ids must be distinct")
	// ErrInvalidSplitType ...
	ErrInvalidSplitType = errors.New("invalid split type")
	// ErrTooManyOutputs ...
	ErrTooManyOutputs = NewOpError(ErrKindTooManyOutputs, "too many outputs")
	// ErrNodeLocked ...
	ErrNodeLocked = NewOpError(ErrKindNodeLocked, "node is locked")
)

// OpError is an operation failure carrying an ErrorKind tag.
type OpError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// NewOpError returns an OpError with the given tag and message.
func NewOpError(kind ErrorKind, message string) *OpError {
	return &OpError{Kind: kind, Message: message}
}

// WrapOpError returns an OpError with the given tag wrapping a lower level
// cause.
func WrapOpError(kind ErrorKind, message string, cause error) *OpError {
	return &OpError{Kind: kind, Message: message, Cause: cause}
}

func (e *OpError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *OpError) Unwrap() error {
	return e.Cause
}

// KindOf returns the ErrorKind of err, or ErrKindServer when the error does
// not carry a tag.
func KindOf(err error) ErrorKind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return ErrKindServer
}

// txPowErrorMatch is the substring the node places in the untyped error text
// of transactions too large to be propagated. The matching rule lives here
// only, so it can be audited or updated in a single place.
const txPowErrorMatch = "TXPOW"

// ClassifySubmitError maps the untyped error text returned by the node on a
// consolidate/send submission to a tagged failure.
func ClassifySubmitError(errText string) *OpError {
	if strings.Contains(errText, txPowErrorMatch) {
		return NewOpError(
			ErrKindTxPowTooBig, "transaction is too large to be processed",
		)
	}
	return &OpError{
		Kind:    ErrKindConsolidation,
		Message: "failed to submit operation",
		Cause:   errors.New(errText),
	}
}

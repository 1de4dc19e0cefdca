package ports

import (
	"context"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NodeService is the wallet-node bridge. Every call is a request/response
// suspension point: the caller blocks until the node answers or fails, and
// no submitted operation can be cancelled from this side.
type NodeService interface {
	Query() NodeQuery
	Operation() NodeOperation
	Notification() NodeNotification
	Close()
}

// NodeQuery groups the read-only node commands.
type NodeQuery interface {
	// Balance returns the balance of every token known to the node.
	Balance(ctx context.Context) ([]domain.Balance, error)
	// BalanceForToken returns the balance of a single token, with token
	// details attached node-side.
	BalanceForToken(ctx context.Context, tokenID string) (*domain.Balance, error)
	// Coins returns all relevant coins.
	Coins(ctx context.Context) (domain.CoinList, error)
	// SendableCoinsForToken returns the sendable coins of a token.
	SendableCoinsForToken(ctx context.Context, tokenID string) (domain.CoinList, error)
	// TrackableCoins returns the relevant coins eligible for track/untrack
	// toggling.
	TrackableCoins(ctx context.Context) (domain.CoinList, error)
	// CoinByID returns a single coin by id.
	CoinByID(ctx context.Context, coinID string) (*domain.Coin, error)
	// Token returns the metadata of a token.
	Token(ctx context.Context, tokenID string) (*domain.Token, error)
	// Status returns the current node status.
	Status(ctx context.Context) (NodeStatus, error)
}

// ConsolidateParams are the node-side parameters of a consolidate command.
type ConsolidateParams struct {
	TokenID  string
	Coinage  int
	MaxCoins int
	Burn     decimal.Decimal
	MaxSigs  int
	DryRun   bool
}

// SendParams are the node-side parameters of a send command. Either Amount
// and Address are set (even split to one address) or Multi is set
// (multi-recipient custom split).
type SendParams struct {
	TokenID string
	Amount  string
	Address string
	Multi   []string
	Split   int
}

// NodeOperation groups the mutating node commands.
type NodeOperation interface {
	Consolidate(ctx context.Context, params ConsolidateParams) (*domain.SubmitResult, error)
	Send(ctx context.Context, params SendParams) (*domain.SubmitResult, error)

	// Manual transaction assembly primitives. Each step's success is a
	// precondition for the next.
	TxnCreate(ctx context.Context, txnID string) error
	TxnInput(ctx context.Context, txnID, coinID string) error
	TxnOutput(ctx context.Context, txnID, address, amount, tokenID string) error
	TxnSign(ctx context.Context, txnID string) (*domain.SubmitResult, error)
	TxnDelete(ctx context.Context, txnID string) error

	TrackCoin(ctx context.Context, coinID string, track bool) (*domain.SubmitResult, error)

	// NewAddress generates a fresh address of the wallet itself.
	NewAddress(ctx context.Context) (string, error)
	// CheckAddress resolves an address to its canonical sendable form.
	CheckAddress(ctx context.Context, address string) (string, error)
}

// NodeNotification exposes the push-event channel of the node.
type NodeNotification interface {
	GetNodeEvents() chan domain.NodeEvent
}

// NodeStatus is the subset of the node status relevant to planning.
type NodeStatus interface {
	IsLocked() bool
	GetVersion() string
	GetBlock() uint64
}

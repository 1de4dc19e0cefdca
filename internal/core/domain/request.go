package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// MinConsolidationInputs and MaxConsolidationInputs bound the number of
	// coins an automatic consolidation may spend in one transaction.
	MinConsolidationInputs = 3
	MaxConsolidationInputs = 20
	// MaxConsolidationSignatures bounds the number of signatures of an
	// automatic consolidation.
	MaxConsolidationSignatures = 5
	// MinSplitCoins is the minimum number of outputs of an even split.
	MinSplitCoins = 2
	// MaxSplitOutputs is the ceiling on the total number of outputs of a
	// custom multi-recipient split.
	MaxSplitOutputs = 15
)

var (
	// ErrInvalidMaxInputs ...
	ErrInvalidMaxInputs = fmt.Errorf(
		"max inputs must be in range [%d, %d]",
		MinConsolidationInputs, MaxConsolidationInputs,
	)
	// ErrInvalidMaxSignatures ...
	ErrInvalidMaxSignatures = fmt.Errorf(
		"max signatures must be in range [1, %d]", MaxConsolidationSignatures,
	)
	// ErrInvalidMinConfirmations ...
	ErrInvalidMinConfirmations = errors.New("min confirmations must not be negative")
	// ErrInvalidBurn ...
	ErrInvalidBurn = errors.New("burn must not be negative")
	// ErrInvalidNumberOfCoins ...
	ErrInvalidNumberOfCoins = fmt.Errorf(
		"must split into at least %d coins", MinSplitCoins,
	)
	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount must be greater than 0")
	// ErrMissingSplits ...
	ErrMissingSplits = errors.New("at least one split is required")
	// ErrMissingSplitAddress ...
	ErrMissingSplitAddress = errors.New("split address is required")
	// ErrCoinNotOwnedByToken ...
	ErrCoinNotOwnedByToken = errors.New("all coins must belong to the request token")
)

// ConsolidationRequest is a parameterized, automatic consolidation: the node
// picks up to MaxInputs coins of the token on its own.
type ConsolidationRequest struct {
	TokenID          string
	MaxInputs        int
	MinConfirmations int
	MaxSignatures    int
	Burn             decimal.Decimal
}

// Validate returns an error if any parameter is out of its allowed range.
func (r ConsolidationRequest) Validate() error {
	if r.MaxInputs < MinConsolidationInputs || r.MaxInputs > MaxConsolidationInputs {
		return ErrInvalidMaxInputs
	}
	if r.MinConfirmations < 0 {
		return ErrInvalidMinConfirmations
	}
	if r.MaxSignatures < 1 || r.MaxSignatures > MaxConsolidationSignatures {
		return ErrInvalidMaxSignatures
	}
	if r.Burn.Sign() < 0 {
		return ErrInvalidBurn
	}
	return nil
}

// ManualConsolidationRequest consolidates an explicit list of coins into a
// single output.
type ManualConsolidationRequest struct {
	TokenID string
	CoinIDs []string
}

// Validate returns an error if the coin list is empty or contains
// duplicates.
func (r ManualConsolidationRequest) Validate() error {
	if len(r.CoinIDs) == 0 {
		return ErrNoCoinsToConsolidate
	}
	seen := make(map[string]struct{}, len(r.CoinIDs))
	for _, id := range r.CoinIDs {
		if _, ok := seen[id]; ok {
			return ErrDuplicatedCoins
		}
		seen[id] = struct{}{}
	}
	return nil
}

// SplitType discriminates the three split request shapes.
type SplitType string

const (
	// SplitTotal splits a total amount evenly into a number of coins.
	SplitTotal SplitType = "total"
	// SplitPerCoin splits a fixed amount-per-coin times a number of coins.
	SplitPerCoin SplitType = "perCoin"
	// SplitCustom splits per-recipient amounts, each into a number of coins.
	SplitCustom SplitType = "custom"
)

// SplitRecipient is one address/amount entry of a custom split.
type SplitRecipient struct {
	Address string
	Amount  decimal.Decimal
}

// SplitRequest is the tagged union of the three split modes. Only the fields
// of the selected Type are meaningful.
type SplitRequest struct {
	Type    SplitType
	TokenID string

	// total and perCoin modes.
	NumberOfCoins int
	TotalAmount   decimal.Decimal
	AmountPerCoin decimal.Decimal

	// custom mode.
	Splits      []SplitRecipient
	SplitAmount int
}

// Validate checks the fields of the selected mode, including the output
// count ceiling of custom splits. It performs no node call, so an oversized
// custom split is rejected before anything reaches the bridge.
func (r SplitRequest) Validate() error {
	switch r.Type {
	case SplitTotal:
		if r.NumberOfCoins < MinSplitCoins {
			return ErrInvalidNumberOfCoins
		}
		if r.TotalAmount.Sign() <= 0 {
			return ErrInvalidAmount
		}
	case SplitPerCoin:
		if r.NumberOfCoins < MinSplitCoins {
			return ErrInvalidNumberOfCoins
		}
		if r.AmountPerCoin.Sign() <= 0 {
			return ErrInvalidAmount
		}
	case SplitCustom:
		if len(r.Splits) == 0 {
			return ErrMissingSplits
		}
		if r.SplitAmount <= 0 {
			return ErrInvalidAmount
		}
		for _, s := range r.Splits {
			if s.Address == "" {
				return ErrMissingSplitAddress
			}
			if s.Amount.Sign() <= 0 {
				return ErrInvalidAmount
			}
		}
		if len(r.Splits)*r.SplitAmount > MaxSplitOutputs {
			return ErrTooManyOutputs
		}
	default:
		return ErrInvalidSplitType
	}
	return nil
}

// SendAmount returns the total amount moved by an even (total or perCoin)
// split, computed with exact decimal arithmetic.
func (r SplitRequest) SendAmount() decimal.Decimal {
	if r.Type == SplitPerCoin {
		return r.AmountPerCoin.Mul(decimal.NewFromInt(int64(r.NumberOfCoins)))
	}
	return r.TotalAmount
}

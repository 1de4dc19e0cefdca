package domain

import (
	"github.com/shopspring/decimal"
)

// BaseTokenID is the reserved token identifier of the base asset.
const BaseTokenID = "0x00"

// Coin is the data structure representing an unspent output owned by the
// wallet node. Coins are immutable once created: they come into existence
// when the transaction creating them is confirmed on-chain and are destroyed
// when spent as input of a later transaction.
type Coin struct {
	CoinID      string
	TokenID     string
	Amount      decimal.Decimal
	TokenAmount *decimal.Decimal
	Address     string
	Created     uint64
	Sendable    bool
}

// EffectiveAmount returns the token-denominated amount of the coin, that is
// the token amount for custom token coins and the plain amount for base
// asset ones.
func (c *Coin) EffectiveAmount() decimal.Decimal {
	if c.TokenAmount != nil {
		return *c.TokenAmount
	}
	return c.Amount
}

// IsConfirmed returns whether the coin has been included in a block.
func (c *Coin) IsConfirmed() bool {
	return c.Created > 0
}

// CoinList is a list of coins with some coin-set level helpers.
type CoinList []Coin

// TotalAmount returns the exact decimal sum of the effective amounts of all
// coins in the list.
func (l CoinList) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for i := range l {
		total = total.Add(l[i].EffectiveAmount())
	}
	return total
}

// FindByID returns the coin with the given id, or nil if not part of the
// list.
func (l CoinList) FindByID(coinID string) *Coin {
	for i := range l {
		if l[i].CoinID == coinID {
			return &l[i]
		}
	}
	return nil
}

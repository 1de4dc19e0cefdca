package domain

import "github.com/shopspring/decimal"

// Balance is the per-token balance snapshot reported by the wallet node.
// Confirmed is always the sum of Sendable and the amounts of the coins
// withheld as residue of outstanding unconfirmed spends. Unconfirmed is
// informational only and takes no part in the disabled-coin calculation.
type Balance struct {
	TokenID     string
	Confirmed   decimal.Decimal
	Sendable    decimal.Decimal
	Unconfirmed decimal.Decimal
}

// WithheldAmount returns the portion of the confirmed balance that is not
// sendable, ie. the amount presumed committed to an outstanding spend.
func (b *Balance) WithheldAmount() decimal.Decimal {
	return b.Confirmed.Sub(b.Sendable)
}

// Token holds the node-side metadata of an asset.
type Token struct {
	TokenID string
	Name    string
	Total   decimal.Decimal
}

// IsBase returns whether the token is the base asset.
func (t *Token) IsBase() bool {
	return t.TokenID == BaseTokenID
}

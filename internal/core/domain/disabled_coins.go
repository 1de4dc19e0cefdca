package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DisabledCoins reconciles the reported sendable balance against the full
// coin list of a token by returning the set of coin ids accounting for the
// confirmed-minus-sendable gap. Such coins are presumed already committed to
// an outstanding unconfirmed spend and must be locked out of new operations.
//
// The returned set is valid only for the given (balance, coins) pairing and
// must be recomputed on every refresh.
func DisabledCoins(balance *Balance, coins CoinList) map[string]struct{} {
	disabled := make(map[string]struct{})
	if balance == nil {
		return disabled
	}

	difference := balance.WithheldAmount()
	if difference.Sign() <= 0 {
		return disabled
	}

	// Exact-match pass: every single coin whose amount equals the whole
	// difference is withheld. If several coins share that amount they are
	// all withheld, even if one would suffice.
	for i := range coins {
		if coins[i].EffectiveAmount().Equal(difference) {
			disabled[coins[i].CoinID] = struct{}{}
		}
	}
	if len(disabled) > 0 {
		return disabled
	}

	// Greedy combination pass: walk the coins largest first, accepting a
	// coin only if it does not overshoot the remaining difference, and stop
	// as soon as the difference is consumed exactly. If no exact combination
	// exists the walk terminates with whatever was accumulated.
	sorted := make(CoinList, len(coins))
	copy(sorted, coins)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveAmount().GreaterThan(sorted[j].EffectiveAmount())
	})

	remaining := difference
	for i := range sorted {
		amount := sorted[i].EffectiveAmount()
		if amount.LessThanOrEqual(remaining) {
			disabled[sorted[i].CoinID] = struct{}{}
			remaining = remaining.Sub(amount)

			if remaining.Equal(decimal.Zero) {
				break
			}
		}
	}

	return disabled
}

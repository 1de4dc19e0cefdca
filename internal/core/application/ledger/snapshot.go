package ledger

import (
	"time"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
)

// Snapshot is one time-bounded pairing of a token's coins and balance,
// together with the disabled coin set derived from exactly that pairing.
type Snapshot struct {
	TokenID  string
	Token    *domain.Token
	Balance  domain.Balance
	Coins    domain.CoinList
	Disabled map[string]struct{}
	TakenAt  time.Time
}

func newSnapshot(
	tokenID string, token *domain.Token,
	balance *domain.Balance, coins domain.CoinList,
) *Snapshot {
	return &Snapshot{
		TokenID:  tokenID,
		Token:    token,
		Balance:  *balance,
		Coins:    coins,
		Disabled: domain.DisabledCoins(balance, coins),
		TakenAt:  time.Now(),
	}
}

// CanConsolidate returns whether the token holds enough coins for a
// consolidation to make sense.
func (s *Snapshot) CanConsolidate() bool {
	return len(s.Coins) >= domain.MinConsolidationInputs
}

// IsDisabled returns whether the coin is withheld from user-initiated
// operations.
func (s *Snapshot) IsDisabled(coinID string) bool {
	_, ok := s.Disabled[coinID]
	return ok
}

// EnabledCoins returns the coins the planners may act on.
func (s *Snapshot) EnabledCoins() domain.CoinList {
	enabled := make(domain.CoinList, 0, len(s.Coins))
	for _, coin := range s.Coins {
		if !s.IsDisabled(coin.CoinID) {
			enabled = append(enabled, coin)
		}
	}
	return enabled
}

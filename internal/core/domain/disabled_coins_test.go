package domain_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
)

func TestDisabledCoinsBalancedToken(t *testing.T) {
	t.Parallel()

	balance := newTestBalance("10", "10")
	coins := newTestCoins("4", "3", "2", "1")

	disabled := domain.DisabledCoins(balance, coins)
	require.Empty(t, disabled)
}

func TestDisabledCoinsNilBalance(t *testing.T) {
	t.Parallel()

	disabled := domain.DisabledCoins(nil, newTestCoins("4", "3"))
	require.Empty(t, disabled)
}

func TestDisabledCoinsExactMatch(t *testing.T) {
	t.Parallel()

	balance := newTestBalance("10", "7")
	coins := newTestCoins("3", "5", "3", "2")

	disabled := domain.DisabledCoins(balance, coins)
	// Both coins of amount 3 match the difference, both get withheld.
	require.Len(t, disabled, 2)
	require.Contains(t, disabled, coins[0].CoinID)
	require.Contains(t, disabled, coins[2].CoinID)
}

func TestDisabledCoinsGreedyCombination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		confirmed string
		sendable  string
		amounts   []string
		expected  []int
	}{
		{
			name:      "largest_first_exact",
			confirmed: "10",
			sendable:  "3",
			amounts:   []string{"5", "3", "2"},
			expected:  []int{0, 2},
		},
		{
			name:      "skips_overshooting_coin",
			confirmed: "10",
			sendable:  "6",
			amounts:   []string{"5", "3", "1"},
			expected:  []int{1, 2},
		},
		{
			name:      "no_exact_combination",
			confirmed: "10",
			sendable:  "4.5",
			amounts:   []string{"4", "3", "2"},
			expected:  []int{0},
		},
		{
			name:      "fractional_amounts",
			confirmed: "3.75",
			sendable:  "1.25",
			amounts:   []string{"1.5", "1.25", "1"},
			expected:  []int{0, 2},
		},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			balance := newTestBalance(tt.confirmed, tt.sendable)
			coins := newTestCoins(tt.amounts...)

			disabled := domain.DisabledCoins(balance, coins)
			require.Len(t, disabled, len(tt.expected))
			for _, idx := range tt.expected {
				require.Contains(t, disabled, coins[idx].CoinID)
			}
		})
	}
}

func TestDisabledCoinsSubsetOfCoinList(t *testing.T) {
	t.Parallel()

	balance := newTestBalance("20", "8.5")
	coins := newTestCoins("6", "4", "3.5", "2", "1")

	disabled := domain.DisabledCoins(balance, coins)
	require.NotEmpty(t, disabled)
	for id := range disabled {
		require.NotNil(t, coins.FindByID(id))
	}
}

func TestDisabledCoinsUsesTokenAmount(t *testing.T) {
	t.Parallel()

	tokenAmount := decimal.RequireFromString("7")
	coins := domain.CoinList{
		{
			CoinID:      "0xC0",
			TokenID:     "0xDEAD",
			Amount:      decimal.RequireFromString("0.001"),
			TokenAmount: &tokenAmount,
		},
		{
			CoinID:  "0xC1",
			TokenID: "0xDEAD",
			Amount:  decimal.RequireFromString("3"),
		},
	}
	balance := newTestBalance("10", "3")

	disabled := domain.DisabledCoins(balance, coins)
	require.Len(t, disabled, 1)
	require.Contains(t, disabled, "0xC0")
}

func newTestBalance(confirmed, sendable string) *domain.Balance {
	return &domain.Balance{
		TokenID:   domain.BaseTokenID,
		Confirmed: decimal.RequireFromString(confirmed),
		Sendable:  decimal.RequireFromString(sendable),
	}
}

func newTestCoins(amounts ...string) domain.CoinList {
	coins := make(domain.CoinList, 0, len(amounts))
	for i, amount := range amounts {
		coins = append(coins, domain.Coin{
			CoinID:   fmt.Sprintf("0xC%d", i),
			TokenID:  domain.BaseTokenID,
			Amount:   decimal.RequireFromString(amount),
			Created:  100,
			Sendable: true,
		})
	}
	return coins
}

package nodebridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
)

type queryManager struct {
	client *client
}

func newQueryManager(cl *client) *queryManager {
	return &queryManager{cl}
}

func (m *queryManager) Balance(ctx context.Context) ([]domain.Balance, error) {
	res, err := m.client.query(ctx, "balance")
	if err != nil {
		return nil, err
	}
	var list []balance
	if err := json.Unmarshal(res, &list); err != nil {
		return nil, err
	}
	balances := make([]domain.Balance, 0, len(list))
	for _, b := range list {
		db, err := b.toDomain()
		if err != nil {
			return nil, err
		}
		balances = append(balances, *db)
	}
	return balances, nil
}

func (m *queryManager) BalanceForToken(
	ctx context.Context, tokenID string,
) (*domain.Balance, error) {
	res, err := m.client.query(
		ctx, fmt.Sprintf("balance tokenid:%s tokendetails:true", tokenID),
	)
	if err != nil {
		return nil, err
	}
	var list []balance
	if err := json.Unmarshal(res, &list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no balance for token %s", tokenID)
	}
	return list[0].toDomain()
}

func (m *queryManager) Coins(ctx context.Context) (domain.CoinList, error) {
	return m.listCoins(ctx, "coins relevant:true")
}

func (m *queryManager) SendableCoinsForToken(
	ctx context.Context, tokenID string,
) (domain.CoinList, error) {
	return m.listCoins(
		ctx, fmt.Sprintf("coins tokenid:%s sendable:true", tokenID),
	)
}

func (m *queryManager) TrackableCoins(ctx context.Context) (domain.CoinList, error) {
	return m.listCoins(ctx, "coins relevant:true sendable:false")
}

func (m *queryManager) CoinByID(
	ctx context.Context, coinID string,
) (*domain.Coin, error) {
	coins, err := m.listCoins(ctx, fmt.Sprintf("coins coinid:%s", coinID))
	if err != nil {
		return nil, err
	}
	if len(coins) == 0 {
		return nil, fmt.Errorf("coin %s not found", coinID)
	}
	return &coins[0], nil
}

func (m *queryManager) Token(
	ctx context.Context, tokenID string,
) (*domain.Token, error) {
	res, err := m.client.query(ctx, fmt.Sprintf("tokens tokenid:%s", tokenID))
	if err != nil {
		return nil, err
	}
	var tok token
	if err := json.Unmarshal(res, &tok); err != nil {
		return nil, err
	}
	return tok.toDomain()
}

func (m *queryManager) Status(ctx context.Context) (ports.NodeStatus, error) {
	res, err := m.client.query(ctx, "status")
	if err != nil {
		return nil, err
	}
	var status nodeStatus
	if err := json.Unmarshal(res, &status); err != nil {
		return nil, err
	}
	return status, nil
}

func (m *queryManager) listCoins(
	ctx context.Context, cmd string,
) (domain.CoinList, error) {
	res, err := m.client.query(ctx, cmd)
	if err != nil {
		return nil, err
	}
	var list coinList
	if err := json.Unmarshal(res, &list); err != nil {
		return nil, err
	}
	return list.toDomainList()
}

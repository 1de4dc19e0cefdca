package nodebridge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
)

type operationManager struct {
	client *client
}

func newOperationManager(cl *client) *operationManager {
	return &operationManager{cl}
}

func (m *operationManager) Consolidate(
	ctx context.Context, params ports.ConsolidateParams,
) (*domain.SubmitResult, error) {
	cmd := fmt.Sprintf(
		"consolidate tokenid:%s coinage:%d maxcoins:%d burn:%s",
		params.TokenID, params.Coinage, params.MaxCoins, params.Burn.String(),
	)
	if params.MaxSigs > 0 {
		cmd += fmt.Sprintf(" maxsigs:%d", params.MaxSigs)
	}
	if params.DryRun {
		cmd += " dryrun:true"
	}

	env, err := m.client.command(ctx, cmd)
	if err != nil {
		return nil, err
	}

	res := env.toSubmitResult()
	if env.Status && len(env.Response) > 0 {
		// Dry runs report the encoded transaction size without moving funds.
		var sized struct {
			Size uint64 `json:"size"`
		}
		if err := json.Unmarshal(env.Response, &sized); err == nil {
			res.Size = sized.Size
		}
	}
	return res, nil
}

func (m *operationManager) Send(
	ctx context.Context, params ports.SendParams,
) (*domain.SubmitResult, error) {
	var cmd string
	if len(params.Multi) > 0 {
		multi, _ := json.Marshal(params.Multi)
		cmd = fmt.Sprintf(
			"send tokenid:%s multi:%s split:%d",
			params.TokenID, string(multi), params.Split,
		)
	} else {
		cmd = fmt.Sprintf(
			"send tokenid:%s amount:%s address:%s split:%d",
			params.TokenID, params.Amount, params.Address, params.Split,
		)
	}

	env, err := m.client.command(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return env.toSubmitResult(), nil
}

func (m *operationManager) TxnCreate(ctx context.Context, txnID string) error {
	_, err := m.client.query(ctx, fmt.Sprintf("txncreate id:%s", txnID))
	return err
}

func (m *operationManager) TxnInput(ctx context.Context, txnID, coinID string) error {
	_, err := m.client.query(
		ctx, fmt.Sprintf("txninput id:%s coinid:%s", txnID, coinID),
	)
	return err
}

func (m *operationManager) TxnOutput(
	ctx context.Context, txnID, address, amount, tokenID string,
) error {
	_, err := m.client.query(ctx, fmt.Sprintf(
		"txnoutput id:%s address:%s amount:%s tokenid:%s",
		txnID, address, amount, tokenID,
	))
	return err
}

func (m *operationManager) TxnSign(
	ctx context.Context, txnID string,
) (*domain.SubmitResult, error) {
	env, err := m.client.command(ctx, fmt.Sprintf(
		"txnsign id:%s publickey:auto txnpostauto:true", txnID,
	))
	if err != nil {
		return nil, err
	}
	return env.toSubmitResult(), nil
}

func (m *operationManager) TxnDelete(ctx context.Context, txnID string) error {
	_, err := m.client.query(ctx, fmt.Sprintf("txndelete id:%s", txnID))
	return err
}

func (m *operationManager) TrackCoin(
	ctx context.Context, coinID string, track bool,
) (*domain.SubmitResult, error) {
	env, err := m.client.command(ctx, fmt.Sprintf(
		"cointrack coinid:%s enable:%t", coinID, track,
	))
	if err != nil {
		return nil, err
	}
	if !env.Status && !env.Pending && env.Error != "" {
		return nil, fmt.Errorf("cointrack failed: %s", env.Error)
	}
	return env.toSubmitResult(), nil
}

func (m *operationManager) NewAddress(ctx context.Context) (string, error) {
	res, err := m.client.query(ctx, "getaddress")
	if err != nil {
		return "", err
	}
	var info addressInfo
	if err := json.Unmarshal(res, &info); err != nil {
		return "", err
	}
	if info.MiniAddress == "" {
		return "", fmt.Errorf("node returned an empty address")
	}
	return info.MiniAddress, nil
}

func (m *operationManager) CheckAddress(
	ctx context.Context, address string,
) (string, error) {
	res, err := m.client.query(
		ctx, fmt.Sprintf("checkaddress address:%s", address),
	)
	if err != nil {
		return "", err
	}
	var checked checkedAddress
	if err := json.Unmarshal(res, &checked); err != nil {
		return "", err
	}
	if strings.TrimSpace(checked.Mx) == "" {
		return "", fmt.Errorf("address %s has no canonical form", address)
	}
	return checked.Mx, nil
}

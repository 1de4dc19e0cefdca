package nodebridge

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/pkg/mathutil"
)

// envelope is the JSON wrapper of every command response. The node reports
// failures as untyped text in the error field; pending operations carry a
// pendinguid instead of a response.
type envelope struct {
	Command    string          `json:"command"`
	Status     bool            `json:"status"`
	Pending    bool            `json:"pending"`
	PendingUID string          `json:"pendinguid"`
	Response   json.RawMessage `json:"response"`
	Error      string          `json:"error"`
}

func (e *envelope) toSubmitResult() *domain.SubmitResult {
	res := &domain.SubmitResult{
		PendingUID: e.PendingUID,
		ErrText:    e.Error,
	}
	if e.Status {
		res.Txn = e.Response
	}
	return res
}

type coin struct {
	CoinID      string `json:"coinid"`
	TokenID     string `json:"tokenid"`
	Amount      string `json:"amount"`
	TokenAmount string `json:"tokenamount"`
	Address     string `json:"address"`
	MiniAddress string `json:"miniaddress"`
	Created     string `json:"created"`
	Sendable    bool   `json:"sendable"`
}

func (c coin) toDomain() (*domain.Coin, error) {
	amount, err := mathutil.ParseAmount(c.Amount)
	if err != nil {
		return nil, err
	}
	var tokenAmount *decimal.Decimal
	if c.TokenAmount != "" {
		ta, err := mathutil.ParseAmount(c.TokenAmount)
		if err != nil {
			return nil, err
		}
		tokenAmount = &ta
	}
	created, _ := strconv.ParseUint(c.Created, 10, 64)
	return &domain.Coin{
		CoinID:      c.CoinID,
		TokenID:     c.TokenID,
		Amount:      amount,
		TokenAmount: tokenAmount,
		Address:     c.Address,
		Created:     created,
		Sendable:    c.Sendable,
	}, nil
}

type coinList []coin

func (l coinList) toDomainList() (domain.CoinList, error) {
	coins := make(domain.CoinList, 0, len(l))
	for _, c := range l {
		dc, err := c.toDomain()
		if err != nil {
			return nil, err
		}
		coins = append(coins, *dc)
	}
	return coins, nil
}

type balance struct {
	TokenID     string `json:"tokenid"`
	Confirmed   string `json:"confirmed"`
	Sendable    string `json:"sendable"`
	Unconfirmed string `json:"unconfirmed"`
}

func (b balance) toDomain() (*domain.Balance, error) {
	confirmed, err := mathutil.ParseAmount(b.Confirmed)
	if err != nil {
		return nil, err
	}
	sendable, err := mathutil.ParseAmount(b.Sendable)
	if err != nil {
		return nil, err
	}
	unconfirmed, err := mathutil.ParseAmount(b.Unconfirmed)
	if err != nil {
		return nil, err
	}
	return &domain.Balance{
		TokenID:     b.TokenID,
		Confirmed:   confirmed,
		Sendable:    sendable,
		Unconfirmed: unconfirmed,
	}, nil
}

type token struct {
	TokenID string          `json:"tokenid"`
	Name    json.RawMessage `json:"token"`
	Total   string          `json:"total"`
}

func (t token) toDomain() (*domain.Token, error) {
	total := decimal.Zero
	if t.Total != "" {
		parsed, err := mathutil.ParseAmount(t.Total)
		if err != nil {
			return nil, err
		}
		total = parsed
	}

	// The token name is either a plain string for the base asset or an
	// object with a name field for custom tokens.
	var name string
	if err := json.Unmarshal(t.Name, &name); err != nil {
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(t.Name, &obj); err == nil {
			name = obj.Name
		}
	}

	return &domain.Token{
		TokenID: t.TokenID,
		Name:    name,
		Total:   total,
	}, nil
}

type addressInfo struct {
	MiniAddress string `json:"miniaddress"`
}

type checkedAddress struct {
	Mx string `json:"Mx"`
}

type nodeStatus struct {
	Version string `json:"version"`
	Locked  bool   `json:"locked"`
	Chain   struct {
		Block uint64 `json:"block"`
	} `json:"chain"`
}

func (s nodeStatus) IsLocked() bool {
	return s.Locked
}

func (s nodeStatus) GetVersion() string {
	return s.Version
}

func (s nodeStatus) GetBlock() uint64 {
	return s.Chain.Block
}

// event is the wire shape of a push event.
type event struct {
	Event string `json:"event"`
	Data  struct {
		UID    string `json:"uid"`
		Accept bool   `json:"accept"`
		Status bool   `json:"status"`
	} `json:"data"`
}

func (e event) toDomain() domain.NodeEvent {
	return domain.NodeEvent{
		Event:  e.Event,
		UID:    e.Data.UID,
		Accept: e.Data.Accept,
		Status: e.Data.Status,
	}
}

package nodebridge

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
)

// testNode is a fake node RPC endpoint recording every received command and
// answering from a canned command-prefix table.
type testNode struct {
	mtx       sync.Mutex
	commands  []string
	responses map[string]string
}

func newTestNode(responses map[string]string) *testNode {
	return &testNode{responses: responses}
}

func (n *testNode) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := ioutil.ReadAll(r.Body)
		cmd := string(body)

		n.mtx.Lock()
		n.commands = append(n.commands, cmd)
		n.mtx.Unlock()

		for prefix, response := range n.responses {
			if len(cmd) >= len(prefix) && cmd[:len(prefix)] == prefix {
				w.Write([]byte(response))
				return
			}
		}
		w.Write([]byte(`{"command":"unknown","status":false,"error":"unknown command"}`))
	}
}

func (n *testNode) receivedCommands() []string {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	return append([]string{}, n.commands...)
}

func TestQueryManager(t *testing.T) {
	node := newTestNode(map[string]string{
		"balance tokenid:0x00": `{"command":"balance","status":true,"response":[{"tokenid":"0x00","confirmed":"10","sendable":"3","unconfirmed":"0"}]}`,
		"coins tokenid:0x00":   `{"command":"coins","status":true,"response":[{"coinid":"0xC0","tokenid":"0x00","amount":"5","created":"100","sendable":true}]}`,
		"coins coinid:0xC0":    `{"command":"coins","status":true,"response":[{"coinid":"0xC0","tokenid":"0x00","amount":"5","created":"100","sendable":true}]}`,
		"status":               `{"command":"status","status":true,"response":{"version":"1.0.30","locked":true,"chain":{"block":420000}}}`,
	})
	server := httptest.NewServer(node.handler())
	defer server.Close()

	manager := newQueryManager(newClient(server.URL))
	ctx := context.Background()

	balance, err := manager.BalanceForToken(ctx, domain.BaseTokenID)
	require.NoError(t, err)
	require.True(t, balance.WithheldAmount().Equal(decimal.RequireFromString("7")))

	coins, err := manager.SendableCoinsForToken(ctx, domain.BaseTokenID)
	require.NoError(t, err)
	require.Len(t, coins, 1)

	coin, err := manager.CoinByID(ctx, "0xC0")
	require.NoError(t, err)
	require.Equal(t, "0xC0", coin.CoinID)

	status, err := manager.Status(ctx)
	require.NoError(t, err)
	require.True(t, status.IsLocked())
	require.Equal(t, uint64(420000), status.GetBlock())

	commands := node.receivedCommands()
	require.Contains(t, commands, "balance tokenid:0x00 tokendetails:true")
	require.Contains(t, commands, "coins tokenid:0x00 sendable:true")
	require.Contains(t, commands, "coins coinid:0xC0")
}

func TestFailingQueryManager(t *testing.T) {
	node := newTestNode(map[string]string{
		"coins coinid:0xMISSING": `{"command":"coins","status":true,"response":[]}`,
		"tokens":                 `{"command":"tokens","status":false,"error":"token not found"}`,
	})
	server := httptest.NewServer(node.handler())
	defer server.Close()

	manager := newQueryManager(newClient(server.URL))
	ctx := context.Background()

	_, err := manager.CoinByID(ctx, "0xMISSING")
	require.Error(t, err)

	_, err = manager.Token(ctx, "0xDEAD")
	require.Error(t, err)
	require.Contains(t, err.Error(), "token not found")
}

func TestOperationManagerConsolidate(t *testing.T) {
	node := newTestNode(map[string]string{
		"consolidate": `{"command":"consolidate","status":true,"response":{"size":1200}}`,
	})
	server := httptest.NewServer(node.handler())
	defer server.Close()

	manager := newOperationManager(newClient(server.URL))

	res, err := manager.Consolidate(context.Background(), ports.ConsolidateParams{
		TokenID:  domain.BaseTokenID,
		Coinage:  3,
		MaxCoins: 10,
		Burn:     decimal.Zero,
		MaxSigs:  5,
		DryRun:   true,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1200), res.Size)

	commands := node.receivedCommands()
	require.Len(t, commands, 1)
	require.Equal(
		t,
		"consolidate tokenid:0x00 coinage:3 maxcoins:10 burn:0 maxsigs:5 dryrun:true",
		commands[0],
	)
}

func TestOperationManagerSend(t *testing.T) {
	node := newTestNode(map[string]string{
		"send": `{"command":"send","status":false,"pending":true,"pendinguid":"0xPENDING","error":"pending"}`,
	})
	server := httptest.NewServer(node.handler())
	defer server.Close()

	manager := newOperationManager(newClient(server.URL))
	ctx := context.Background()

	res, err := manager.Send(ctx, ports.SendParams{
		TokenID: domain.BaseTokenID,
		Amount:  "40",
		Address: "MxNEW",
		Split:   4,
	})
	require.NoError(t, err)
	require.True(t, res.IsPending())
	require.Equal(t, "0xPENDING", res.PendingUID)

	_, err = manager.Send(ctx, ports.SendParams{
		TokenID: domain.BaseTokenID,
		Multi:   []string{"MxADDR1:1.5", "MxADDR2:2.5"},
		Split:   3,
	})
	require.NoError(t, err)

	commands := node.receivedCommands()
	require.Equal(t, "send tokenid:0x00 amount:40 address:MxNEW split:4", commands[0])
	require.Equal(
		t, `send tokenid:0x00 multi:["MxADDR1:1.5","MxADDR2:2.5"] split:3`,
		commands[1],
	)
}

func TestOperationManagerTxnAssembly(t *testing.T) {
	node := newTestNode(map[string]string{
		"txncreate":    `{"command":"txncreate","status":true,"response":{}}`,
		"txninput":     `{"command":"txninput","status":true,"response":{}}`,
		"txnoutput":    `{"command":"txnoutput","status":true,"response":{}}`,
		"txnsign":      `{"command":"txnsign","status":true,"response":{"txpowid":"0xABC"}}`,
		"txndelete":    `{"command":"txndelete","status":true,"response":{}}`,
		"checkaddress": `{"command":"checkaddress","status":true,"response":{"Mx":"MxRESOLVED"}}`,
		"getaddress":   `{"command":"getaddress","status":true,"response":{"miniaddress":"MxNEW"}}`,
	})
	server := httptest.NewServer(node.handler())
	defer server.Close()

	manager := newOperationManager(newClient(server.URL))
	ctx := context.Background()

	require.NoError(t, manager.TxnCreate(ctx, "txn-1"))
	require.NoError(t, manager.TxnInput(ctx, "txn-1", "0xC0"))

	address, err := manager.CheckAddress(ctx, "0xADDR0")
	require.NoError(t, err)
	require.Equal(t, "MxRESOLVED", address)

	require.NoError(t, manager.TxnOutput(ctx, "txn-1", address, "4", domain.BaseTokenID))

	res, err := manager.TxnSign(ctx, "txn-1")
	require.NoError(t, err)
	require.NotEmpty(t, res.Txn)

	require.NoError(t, manager.TxnDelete(ctx, "txn-1"))

	generated, err := manager.NewAddress(ctx)
	require.NoError(t, err)
	require.Equal(t, "MxNEW", generated)

	commands := node.receivedCommands()
	require.Equal(t, "txncreate id:txn-1", commands[0])
	require.Equal(t, "txninput id:txn-1 coinid:0xC0", commands[1])
	require.Equal(t, "checkaddress address:0xADDR0", commands[2])
	require.Equal(t, "txnoutput id:txn-1 address:MxRESOLVED amount:4 tokenid:0x00", commands[3])
	require.Equal(t, "txnsign id:txn-1 publickey:auto txnpostauto:true", commands[4])
	require.Equal(t, "txndelete id:txn-1", commands[5])
}

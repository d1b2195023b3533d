package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"sync"
	"testing"

	"github.com/chinmay1088/walletd/api"
	"github.com/chinmay1088/walletd/wallet"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type stubRequest struct {
	Method string          `json:"method"`
	ID     uint64          `json:"id"`
	Params json.RawMessage `json:"params"`
}

// walletdStub answers each method with a handler returning the JSON result
type walletdStub struct {
	mu       sync.Mutex
	requests []stubRequest
}

func newWalletdStub(t *testing.T, handlers map[string]func(params json.RawMessage) string) (*walletdStub, wallet.Profile) {
	t.Helper()

	stub := &walletdStub{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req stubRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		stub.mu.Lock()
		stub.requests = append(stub.requests, req)
		stub.mu.Unlock()

		handler, ok := handlers[req.Method]
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"error":{"code":-32601,"message":"Method not found"}}`, req.ID)
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":%s}`, req.ID, handler(req.Params))
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	return stub, wallet.Profile{
		Host:     u.Scheme + "://" + u.Hostname(),
		Port:     port,
		Decimals: wallet.DefaultDecimals,
	}
}

func (s *walletdStub) calls(method string) []stubRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []stubRequest
	for _, req := range s.requests {
		if req.Method == method {
			out = append(out, req)
		}
	}
	return out
}

func TestExporterCollect(t *testing.T) {
	stub, profile := newWalletdStub(t, map[string]func(json.RawMessage) string{
		"getAddresses": func(json.RawMessage) string {
			return `{"addresses":["a1","a2"]}`
		},
		"getBalance": func(json.RawMessage) string {
			return `{"availableBalance":150000000,"lockedAmount":1}`
		},
		"getTransactions": func(params json.RawMessage) string {
			var q struct {
				FirstBlockIndex uint64 `json:"firstBlockIndex"`
			}
			_ = json.Unmarshal(params, &q)
			return fmt.Sprintf(`{"items":[{"blockHash":"bh","transactions":[
				{"transactionHash":"tx%d","blockIndex":%d,"timestamp":0,"amount":-200000000,"fee":1000000,"isBase":false}
			]}]}`, q.FirstBlockIndex, q.FirstBlockIndex)
		},
	})

	var progress []uint64
	e := &exporter{
		client:   wallet.NewClient(profile, "pw", nil),
		limiter:  rate.NewLimiter(rate.Inf, 1),
		chunk:    10,
		decimals: wallet.DefaultDecimals,
		progress: func(blocks uint64) { progress = append(progress, blocks) },
	}

	data, err := e.collect(context.Background(), 25)
	require.NoError(t, err)

	assert.Equal(t, uint64(25), data.BlockCount)
	assert.Equal(t, []BalanceData{
		{Address: "a1", Available: "1.50000000", Locked: "0.00000001"},
		{Address: "a2", Available: "1.50000000", Locked: "0.00000001"},
	}, data.Balances)

	require.Len(t, data.Transactions, 3)
	assert.Equal(t, "tx0", data.Transactions[0].Hash)
	assert.Equal(t, "tx20", data.Transactions[2].Hash)
	assert.Equal(t, "OUT", data.Transactions[0].Direction)
	assert.Equal(t, "-2.00000000", data.Transactions[0].Amount)
	assert.Equal(t, "0.01000000", data.Transactions[0].Fee)
	assert.Empty(t, data.Transactions[0].Timestamp)

	assert.Equal(t, []uint64{10, 20, 25}, progress)

	requests := stub.calls("getTransactions")
	require.Len(t, requests, 3)
	assert.JSONEq(t, `{"blockCount":10}`, string(requests[0].Params))
	assert.JSONEq(t, `{"blockCount":10,"firstBlockIndex":10}`, string(requests[1].Params))
	assert.JSONEq(t, `{"blockCount":5,"firstBlockIndex":20}`, string(requests[2].Params))
}

func TestExporterStopsOnDaemonError(t *testing.T) {
	_, profile := newWalletdStub(t, map[string]func(json.RawMessage) string{
		"getAddresses": func(json.RawMessage) string { return `{"addresses":[]}` },
	})

	e := &exporter{
		client:   wallet.NewClient(profile, "pw", nil),
		limiter:  rate.NewLimiter(rate.Inf, 1),
		chunk:    10,
		decimals: wallet.DefaultDecimals,
	}

	_, err := e.collect(context.Background(), 5)
	assert.ErrorContains(t, err, "failed to fetch blocks 0-4")
	assert.ErrorContains(t, err, "Method not found")
}

func TestWriteExportFiles(t *testing.T) {
	dir := t.TempDir()
	data := &ExportData{
		ExportDate: "2024-01-01 00:00:00",
		Endpoint:   "http://127.0.0.1:8070/json_rpc",
		BlockCount: 10,
		Balances:   []BalanceData{{Address: "a1", Available: "1.00000000", Locked: "0.00000000"}},
		Transactions: []TransactionData{
			{Hash: "tx1", BlockIndex: 3, Direction: "IN", Amount: "+1.00000000", Fee: "0.00000000", PaymentID: "pid"},
		},
	}

	files, err := writeExportFiles(data, dir, true, true)
	require.NoError(t, err)
	require.Len(t, files, 2)

	csvFile, err := os.Open(files[0])
	require.NoError(t, err)
	defer csvFile.Close()
	rows, err := csv.NewReader(csvFile).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Balance", "a1", "", "", "", "1.00000000", "0.00000000", ""}, rows[1])
	assert.Equal(t, []string{"Transaction", "tx1", "3", "", "IN", "+1.00000000", "0.00000000", "pid"}, rows[2])

	raw, err := os.ReadFile(files[1])
	require.NoError(t, err)
	var decoded ExportData
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *data, decoded)
}

func TestTransferRequestFromFlags(t *testing.T) {
	cmd := &cobra.Command{}
	addPayFlags(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse([]string{
		"--to", "b=0.25",
		"--fee", "0.01",
		"--payment-id", "pid",
		"--from", "src1,src2",
	}))

	req, err := transferRequestFromFlags(cmd, []string{"a", "1.5"}, 8)
	require.NoError(t, err)
	assert.Equal(t, api.TransferRequest{
		Anonymity: 3,
		Transfers: []api.Transfer{
			{Address: "a", Amount: 150000000},
			{Address: "b", Amount: 25000000},
		},
		Fee:       1000000,
		Addresses: []string{"src1", "src2"},
		PaymentID: "pid",
	}, req)
}

func TestTransferRequestFromFlagsRejectsBadDestination(t *testing.T) {
	cmd := &cobra.Command{}
	addPayFlags(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse([]string{"--to", "missing-amount"}))

	_, err := transferRequestFromFlags(cmd, []string{"a", "1"}, 8)
	assert.ErrorContains(t, err, "expected address=amount")

	_, err = transferRequestFromFlags(&cobra.Command{}, []string{"a", "not-a-number"}, 8)
	assert.ErrorContains(t, err, "invalid amount")
}

func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{}
	cmd.Flags().String("host", "", "")
	cmd.Flags().Int("port", 0, "")
	cmd.Flags().String("rpc-password", "", "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestResolveProfile(t *testing.T) {
	manager := wallet.NewManagerAt(t.TempDir())
	require.NoError(t, manager.SaveProfile(wallet.Profile{Host: "http://10.0.0.2", Port: 9000, Decimals: 6}))

	profile, err := resolveProfile(newFlagCommand(t), manager)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:9000/json_rpc", profile.Endpoint())
	assert.False(t, profile.Logging)

	profile, err = resolveProfile(newFlagCommand(t, "--host", "https://walletd", "--port", "8443", "-v"), manager)
	require.NoError(t, err)
	assert.Equal(t, "https://walletd:8443/json_rpc", profile.Endpoint())
	assert.True(t, profile.Logging)
	assert.Equal(t, int32(6), profile.Decimals)

	_, err = resolveProfile(newFlagCommand(t, "--host", "walletd"), manager)
	assert.ErrorContains(t, err, "host must include the scheme")
}

func TestResolvePassword(t *testing.T) {
	manager := wallet.NewManagerAt(t.TempDir())
	profile := wallet.DefaultProfile()

	password, err := resolvePassword(newFlagCommand(t), manager, profile)
	require.NoError(t, err)
	assert.Equal(t, api.DefaultPassword, password)

	password, err = resolvePassword(newFlagCommand(t, "--rpc-password", ""), manager, profile)
	require.NoError(t, err)
	assert.Empty(t, password)

	require.NoError(t, manager.StorePassword("stored", "passphrase", profile.Endpoint()))
	password, err = resolvePassword(newFlagCommand(t), manager, profile)
	require.NoError(t, err)
	assert.Equal(t, "stored", password)
}

func TestResultReportsDaemonError(t *testing.T) {
	_, profile := newWalletdStub(t, nil)
	client := wallet.NewClient(profile, "pw", nil)

	_, err := result[api.BalanceResult](client.GetBalance(context.Background(), "bad"))
	assert.ErrorContains(t, err, "Method not found")
	assert.ErrorContains(t, err, "(code -32601)")

	err = done(client.Save(context.Background()))
	assert.ErrorContains(t, err, "Method not found")
}

func TestResultReportsTransportError(t *testing.T) {
	client := wallet.NewClient(wallet.Profile{Host: "http://127.0.0.1", Port: 1}, "pw", nil)

	_, err := result[api.StatusResult](client.GetStatus(context.Background()))
	assert.ErrorContains(t, err, "walletd request failed")
}

func TestStatusRejectsNonPositiveInterval(t *testing.T) {
	for _, interval := range []string{"0s", "-1s"} {
		cmd := &cobra.Command{}
		cmd.Flags().Bool("watch", false, "")
		cmd.Flags().Duration("interval", 0, "")
		require.NoError(t, cmd.Flags().Parse([]string{"--watch", "--interval", interval}))

		err := runStatus(cmd, nil)
		assert.EqualError(t, err, "--interval must be positive", interval)
	}
}

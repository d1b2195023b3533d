package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chinmay1088/walletd/rpc"
)

// Response is the outcome of a call that reached walletd
type Response struct {
	Status int
	Header http.Header
	Body   *RPCResponse
	// Raw is the body exactly as walletd sent it
	Raw json.RawMessage
}

// RPCResponse represents a walletd JSON-RPC response
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the error object walletd returns for a failed call
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("walletd error %d: %s", e.Code, e.Message)
}

// Decode unmarshals the result of the call into v.
// A daemon error object is returned as *RPCError.
func (r *Response) Decode(v any) error {
	if r == nil || r.Body == nil {
		return errors.New("empty response")
	}
	if r.Body.Error != nil {
		return r.Body.Error
	}
	if len(r.Body.Result) == 0 {
		return errors.New("no result in response")
	}
	if err := json.Unmarshal(r.Body.Result, v); err != nil {
		return fmt.Errorf("failed to parse result: %w", err)
	}
	return nil
}

// Transfer is a single destination of an outgoing transaction
type Transfer struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

// TransactionQuery selects transactions by block range.
// BlockCount is required, everything else is optional.
type TransactionQuery struct {
	BlockCount      uint64
	FirstBlockIndex uint64
	BlockHash       string
	Addresses       []string
	PaymentID       string
}

func (q TransactionQuery) params() rpc.Params {
	return rpc.Params{}.
		Set("blockCount", q.BlockCount).
		SetUint64("firstBlockIndex", q.FirstBlockIndex).
		SetString("blockHash", q.BlockHash).
		SetStrings("addresses", q.Addresses).
		SetString("paymentId", q.PaymentID)
}

// TransferRequest describes a transaction to send or to store as delayed.
// Anonymity, Transfers and Fee are always sent.
type TransferRequest struct {
	Anonymity     uint64
	Transfers     []Transfer
	Fee           uint64
	Addresses     []string
	UnlockTime    uint64
	Extra         string
	PaymentID     string
	ChangeAddress string
}

func (r TransferRequest) params() rpc.Params {
	transfers := r.Transfers
	if transfers == nil {
		transfers = []Transfer{}
	}
	return rpc.Params{}.
		Set("anonymity", r.Anonymity).
		Set("transfers", transfers).
		Set("fee", r.Fee).
		SetStrings("addresses", r.Addresses).
		SetUint64("unlockTime", r.UnlockTime).
		SetString("extra", r.Extra).
		SetString("paymentId", r.PaymentID).
		SetString("changeAddress", r.ChangeAddress)
}

// FusionRequest describes a fusion transaction
type FusionRequest struct {
	Threshold          uint64
	Anonymity          uint64
	Addresses          []string
	DestinationAddress string
}

func (r FusionRequest) params() rpc.Params {
	return rpc.Params{}.
		Set("threshold", r.Threshold).
		Set("anonymity", r.Anonymity).
		SetStrings("addresses", r.Addresses).
		SetString("destinationAddress", r.DestinationAddress)
}

// StatusResult is the result of getStatus
type StatusResult struct {
	BlockCount      uint64 `json:"blockCount"`
	KnownBlockCount uint64 `json:"knownBlockCount"`
	LastBlockHash   string `json:"lastBlockHash"`
	PeerCount       uint64 `json:"peerCount"`
}

// Synced reports whether the wallet has caught up with the network
func (s StatusResult) Synced() bool {
	return s.KnownBlockCount > 0 && s.BlockCount >= s.KnownBlockCount
}

type AddressesResult struct {
	Addresses []string `json:"addresses"`
}

type AddressResult struct {
	Address string `json:"address"`
}

type ViewKeyResult struct {
	ViewSecretKey string `json:"viewSecretKey"`
}

type SpendKeysResult struct {
	SpendSecretKey string `json:"spendSecretKey"`
	SpendPublicKey string `json:"spendPublicKey"`
}

// BalanceResult amounts are in atomic units
type BalanceResult struct {
	AvailableBalance uint64 `json:"availableBalance"`
	LockedAmount     uint64 `json:"lockedAmount"`
}

type BlockHashesResult struct {
	BlockHashes []string `json:"blockHashes"`
}

// TransactionHashesResult is the result of getTransactionHashes
type TransactionHashesResult struct {
	Items []struct {
		BlockHash         string   `json:"blockHash"`
		TransactionHashes []string `json:"transactionHashes"`
	} `json:"items"`
}

// TransactionsResult is the result of getTransactions
type TransactionsResult struct {
	Items []struct {
		BlockHash    string        `json:"blockHash"`
		Transactions []Transaction `json:"transactions"`
	} `json:"items"`
}

// Transaction represents a wallet transaction as reported by walletd
type Transaction struct {
	TransactionHash string                `json:"transactionHash"`
	BlockIndex      uint64                `json:"blockIndex"`
	Timestamp       uint64                `json:"timestamp"`
	IsBase          bool                  `json:"isBase"`
	UnlockTime      uint64                `json:"unlockTime"`
	Amount          int64                 `json:"amount"` // negative for outgoing
	Fee             uint64                `json:"fee"`
	Extra           string                `json:"extra"`
	PaymentID       string                `json:"paymentId"`
	State           int                   `json:"state"`
	Transfers       []TransactionTransfer `json:"transfers"`
}

type TransactionTransfer struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
	Type    int    `json:"type"`
}

type TransactionResult struct {
	Transaction Transaction `json:"transaction"`
}

// TransactionHashResult is returned by the calls that create a transaction
type TransactionHashResult struct {
	TransactionHash string `json:"transactionHash"`
}

// HashesResult is returned by getUnconfirmedTransactionHashes and getDelayedTransactionHashes
type HashesResult struct {
	TransactionHashes []string `json:"transactionHashes"`
}

type FusionEstimateResult struct {
	FusionReadyCount uint64 `json:"fusionReadyCount"`
	TotalOutputCount uint64 `json:"totalOutputCount"`
}

type MnemonicSeedResult struct {
	MnemonicSeed string `json:"mnemonicSeed"`
}

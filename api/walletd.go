package api

import (
	"context"

	"github.com/chinmay1088/walletd/rpc"
)

// Reset re-syncs the wallet. When viewSecretKey is given the container is
// replaced by a new wallet built from that key.
func (c *Client) Reset(ctx context.Context, viewSecretKey string) (*Response, error) {
	return c.send(ctx, rpc.Reset, rpc.Params{}.SetString("viewSecretKey", viewSecretKey))
}

// Save stores the wallet container on disk
func (c *Client) Save(ctx context.Context) (*Response, error) {
	return c.send(ctx, rpc.Save, nil)
}

// GetViewKey returns the private view key of the wallet
func (c *Client) GetViewKey(ctx context.Context) (*Response, error) {
	return c.send(ctx, rpc.GetViewKey, nil)
}

// GetSpendKeys returns the spend key pair of an address in the container
func (c *Client) GetSpendKeys(ctx context.Context, address string) (*Response, error) {
	return c.send(ctx, rpc.GetSpendKeys, rpc.Params{}.Set("address", address))
}

// GetStatus returns the block count, known block count, last block hash and peer count
func (c *Client) GetStatus(ctx context.Context) (*Response, error) {
	return c.send(ctx, rpc.GetStatus, nil)
}

// GetAddresses lists the addresses of the container
func (c *Client) GetAddresses(ctx context.Context) (*Response, error) {
	return c.send(ctx, rpc.GetAddresses, nil)
}

// CreateAddress adds an address to the wallet.
// With secretSpendKey a spend address is imported, with publicSpendKey a
// view-only address. walletd rejects requests carrying both.
func (c *Client) CreateAddress(ctx context.Context, secretSpendKey, publicSpendKey string) (*Response, error) {
	params := rpc.Params{}.
		SetString("secretSpendKey", secretSpendKey).
		SetString("publicSpendKey", publicSpendKey)
	return c.send(ctx, rpc.CreateAddress, params)
}

// DeleteAddress removes an address from the container
func (c *Client) DeleteAddress(ctx context.Context, address string) (*Response, error) {
	return c.send(ctx, rpc.DeleteAddress, rpc.Params{}.Set("address", address))
}

// GetBalance returns the balance of one address, or of the whole container when address is empty
func (c *Client) GetBalance(ctx context.Context, address string) (*Response, error) {
	return c.send(ctx, rpc.GetBalance, rpc.Params{}.SetString("address", address))
}

// GetBlockHashes returns blockCount hashes starting at firstBlockIndex
func (c *Client) GetBlockHashes(ctx context.Context, firstBlockIndex, blockCount uint64) (*Response, error) {
	params := rpc.Params{}.
		Set("firstBlockIndex", firstBlockIndex).
		Set("blockCount", blockCount)
	return c.send(ctx, rpc.GetBlockHashes, params)
}

// GetTransactionHashes returns transaction hashes grouped by block
func (c *Client) GetTransactionHashes(ctx context.Context, query TransactionQuery) (*Response, error) {
	return c.send(ctx, rpc.GetTransactionHashes, query.params())
}

// GetTransactions returns full transactions grouped by block
func (c *Client) GetTransactions(ctx context.Context, query TransactionQuery) (*Response, error) {
	return c.send(ctx, rpc.GetTransactions, query.params())
}

// GetUnconfirmedTransactionHashes returns hashes of transactions still in the pool
func (c *Client) GetUnconfirmedTransactionHashes(ctx context.Context, addresses ...string) (*Response, error) {
	return c.send(ctx, rpc.GetUnconfirmedTransactionHashes, rpc.Params{}.SetStrings("addresses", addresses))
}

// GetTransaction returns a single transaction by hash
func (c *Client) GetTransaction(ctx context.Context, transactionHash string) (*Response, error) {
	return c.send(ctx, rpc.GetTransaction, rpc.Params{}.Set("transactionHash", transactionHash))
}

// SendTransaction creates and broadcasts a transaction
func (c *Client) SendTransaction(ctx context.Context, req TransferRequest) (*Response, error) {
	return c.send(ctx, rpc.SendTransaction, req.params())
}

// CreateDelayedTransaction creates a transaction without broadcasting it
func (c *Client) CreateDelayedTransaction(ctx context.Context, req TransferRequest) (*Response, error) {
	return c.send(ctx, rpc.CreateDelayedTransaction, req.params())
}

// GetDelayedTransactionHashes lists the stored delayed transactions
func (c *Client) GetDelayedTransactionHashes(ctx context.Context) (*Response, error) {
	return c.send(ctx, rpc.GetDelayedTransactionHashes, nil)
}

// DeleteDelayedTransaction drops a delayed transaction
func (c *Client) DeleteDelayedTransaction(ctx context.Context, transactionHash string) (*Response, error) {
	return c.send(ctx, rpc.DeleteDelayedTransaction, rpc.Params{}.Set("transactionHash", transactionHash))
}

// SendDelayedTransaction broadcasts a delayed transaction
func (c *Client) SendDelayedTransaction(ctx context.Context, transactionHash string) (*Response, error) {
	return c.send(ctx, rpc.SendDelayedTransaction, rpc.Params{}.Set("transactionHash", transactionHash))
}

// SendFusionTransaction merges outputs below the threshold into larger ones
func (c *Client) SendFusionTransaction(ctx context.Context, req FusionRequest) (*Response, error) {
	return c.send(ctx, rpc.SendFusionTransaction, req.params())
}

// EstimateFusion counts the outputs that could be fused below the threshold
func (c *Client) EstimateFusion(ctx context.Context, threshold uint64, addresses ...string) (*Response, error) {
	params := rpc.Params{}.
		Set("threshold", threshold).
		SetStrings("addresses", addresses)
	return c.send(ctx, rpc.EstimateFusion, params)
}

// GetMnemonicSeed returns the mnemonic seed of a deterministic address
func (c *Client) GetMnemonicSeed(ctx context.Context, address string) (*Response, error) {
	return c.send(ctx, rpc.GetMnemonicSeed, rpc.Params{}.Set("address", address))
}

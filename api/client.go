package api

// API Client-
//
// Files:
//   config.go    - connection defaults and the Config struct
//   types.go     - response envelope, request structs and typed walletd results
//   base.go      - Core client functionality (Client struct, NewClient, Call, transport)
//   walletd.go   - one method per walletd JSON-RPC call
//   future.go    - asynchronous wrapper around any client call
//
// Usage:
//   client := api.NewClient(api.DefaultConfig())          // from base.go
//   resp, err := client.GetBalance(ctx, "")                // from walletd.go
//   var balance api.BalanceResult
//   err = resp.Decode(&balance)                            // from types.go
//   f := api.Go(ctx, client.GetStatus)                     // from future.go

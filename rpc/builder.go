// Package rpc builds the request envelopes of the walletd JSON-RPC interface.
//
// Files:
//   builder.go  - envelope type, Params mapping and the Build/Encode helpers
//   methods.go  - method names and one forwarding function per walletd method
//
// Usage:
//   req := rpc.GetBalance(id, password, rpc.Params{}.SetString("address", addr))
//   payload, err := req.Encode()
package rpc

import (
	"encoding/json"
	"fmt"
)

// Version is the JSON-RPC protocol marker sent with every request
const Version = "2.0"

// Params holds the named parameters of a request.
// Optional values are only inserted when present so the daemon never
// sees a null for something the caller did not provide.
// Like url.Values, a nil Params can be read and passed to Build but the
// Set methods panic on it; start from Params{}.
type Params map[string]any

// Set inserts a value unconditionally
func (p Params) Set(key string, value any) Params {
	p[key] = value
	return p
}

// SetString inserts a string when it is not empty
func (p Params) SetString(key, value string) Params {
	if value != "" {
		p[key] = value
	}
	return p
}

// SetUint64 inserts an integer when it is not zero
func (p Params) SetUint64(key string, value uint64) Params {
	if value != 0 {
		p[key] = value
	}
	return p
}

// SetStrings inserts a list when it has at least one element
func (p Params) SetStrings(key string, values []string) Params {
	if len(values) > 0 {
		p[key] = values
	}
	return p
}

// Request is a JSON-RPC 2.0 request envelope
type Request struct {
	JSONRPC  string `json:"jsonrpc"`
	Method   string `json:"method"`
	ID       uint64 `json:"id"`
	Password string `json:"password,omitempty"`
	Params   Params `json:"params,omitempty"`
}

// Build creates the envelope for a method call. The password and params
// keys are left out entirely when they are empty.
func Build(method string, id uint64, password string, params Params) Request {
	req := Request{
		JSONRPC:  Version,
		Method:   method,
		ID:       id,
		Password: password,
	}
	if len(params) > 0 {
		req.Params = params
	}
	return req
}

// Encode serializes the envelope to its wire form
func (r Request) Encode() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", r.Method, err)
	}
	return data, nil
}

// Encode builds and serializes an envelope in one step
func Encode(method string, id uint64, password string, params Params) ([]byte, error) {
	return Build(method, id, password, params).Encode()
}

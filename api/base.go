package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/chinmay1088/walletd/rpc"
	"go.uber.org/zap"
)

// Client handles JSON-RPC calls to a walletd daemon
type Client struct {
	httpClient *http.Client
	log        *zap.Logger
	config     Config

	// id of the next request
	id      atomic.Uint64
	logging atomic.Bool
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient sets the transport used for every call
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the diagnostic sink used when logging is enabled
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new walletd client.
// No timeout is set on the default transport, calls are bounded by their context.
func NewClient(config Config, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		config:     config,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = zap.NewNop()
		if config.Logging {
			if log, err := zap.NewDevelopment(); err == nil {
				c.log = log
			}
		}
	}
	c.logging.Store(config.Logging)

	return c
}

// Endpoint returns the URL requests are posted to
func (c *Client) Endpoint() string {
	return c.config.Endpoint()
}

// ID returns the id the next request will carry
func (c *Client) ID() uint64 {
	return c.id.Load()
}

// SetLogging switches the diagnostic output on or off
func (c *Client) SetLogging(enabled bool) {
	c.logging.Store(enabled)
}

// Call sends a single JSON-RPC request and returns the parsed response.
// The request id is consumed whether or not the call succeeds.
func (c *Client) Call(ctx context.Context, method string, params rpc.Params) (*Response, error) {
	return c.send(ctx, func(id uint64, password string, params rpc.Params) rpc.Request {
		return rpc.Build(method, id, password, params)
	}, params)
}

// send builds the envelope with build, posts it and parses the reply
func (c *Client) send(ctx context.Context, build rpc.BuildFunc, params rpc.Params) (*Response, error) {
	id := c.id.Add(1) - 1

	req := build(id, c.config.Password, params)
	method := req.Method
	payload, err := req.Encode()
	if err != nil {
		return nil, err
	}

	logging := c.logging.Load()
	url := c.Endpoint()
	if logging {
		c.log.Debug("sending request to walletd",
			zap.String("url", url),
			zap.Uint64("id", id),
			zap.String("method", method),
			zap.Any("params", params),
		)
	}

	resp, err := c.postJSON(ctx, url, payload)
	if err != nil {
		if logging {
			c.log.Error("error sending request to walletd",
				zap.Uint64("id", id),
				zap.String("method", method),
				zap.Error(err),
			)
		}
		return nil, err
	}

	if logging {
		c.log.Debug("request to walletd successful",
			zap.Uint64("id", id),
			zap.Int("status", resp.Status),
			zap.Any("headers", resp.Header),
			zap.ByteString("body", resp.Raw),
		)
	}

	return resp, nil
}

// postJSON sends a POST request with a JSON payload and parses the JSON reply.
// HTTP statuses are not interpreted, walletd reports failures in the body.
func (c *Client) postJSON(ctx context.Context, url string, payload []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var rpcResp RPCResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   &rpcResp,
		Raw:    body,
	}, nil
}

package agglayer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xavier-romero/agglayer-dashboard/pkg/metrics"
	"github.com/xavier-romero/agglayer-dashboard/pkg/retry"
)

const (
	methodLatestSettled = "interop_getLatestSettledCertificateHeader"
	methodLatestPending = "interop_getLatestPendingCertificateHeader"

	requestTimeout = 10 * time.Second
)

// RPCError is a JSON-RPC error returned by the AggLayer endpoint.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("agglayer rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error,omitempty"`
	ID      int             `json:"id"`
}

// Client talks JSON-RPC 2.0 to an AggLayer endpoint.
type Client struct {
	base   string
	hc     *http.Client
	policy retry.Policy
}

// NewClient creates an AggLayer client for the given base URL.
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc: &http.Client{
			Timeout: requestTimeout,
		},
		policy: retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   200 * time.Millisecond,
			MaxDelay:    2 * time.Second,
			Jitter:      100 * time.Millisecond,
			Classify: func(err error) retry.Class {
				// Application errors never heal on retry.
				var rpcErr *RPCError
				if errors.As(err, &rpcErr) {
					return retry.Fatal
				}
				return retry.Retryable
			},
			OnRetry: func(attempt int, wait time.Duration, err error) {
				log.Warn().Int("attempt", attempt).Dur("wait", wait).Err(err).
					Msg("Retrying AggLayer request")
			},
		},
	}
}

// URL returns the configured endpoint.
func (c *Client) URL() string {
	return c.base
}

// LatestSettledCertificateHeader fetches the most recent settled certificate
// for a rollup. A nil header with nil error means the AggLayer has no
// settled certificate yet.
func (c *Client) LatestSettledCertificateHeader(ctx context.Context, rollupID uint32) (*CertificateHeader, error) {
	return c.certificateHeader(ctx, methodLatestSettled, rollupID)
}

// LatestPendingCertificateHeader fetches the most recent in-flight
// certificate for a rollup.
func (c *Client) LatestPendingCertificateHeader(ctx context.Context, rollupID uint32) (*CertificateHeader, error) {
	return c.certificateHeader(ctx, methodLatestPending, rollupID)
}

// CertificateData fetches both headers for a rollup. Each side degrades to
// nil on failure so a broken AggLayer never takes a rollup page down.
func (c *Client) CertificateData(ctx context.Context, rollupID uint32) CertificateData {
	settled, err := c.LatestSettledCertificateHeader(ctx, rollupID)
	if err != nil {
		log.Warn().Uint32("rollup_id", rollupID).Err(err).Msg("Failed to fetch settled certificate header")
	}

	pending, err := c.LatestPendingCertificateHeader(ctx, rollupID)
	if err != nil {
		log.Warn().Uint32("rollup_id", rollupID).Err(err).Msg("Failed to fetch pending certificate header")
	}

	return CertificateData{Settled: settled, Pending: pending}
}

// Reachable probes the endpoint. Transport and HTTP failures are reported;
// a JSON-RPC application error still counts as reachable.
func (c *Client) Reachable(ctx context.Context) error {
	_, err := c.call(ctx, methodLatestSettled, []interface{}{uint32(1)})
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return nil
	}
	return err
}

func (c *Client) certificateHeader(ctx context.Context, method string, rollupID uint32) (*CertificateHeader, error) {
	var result json.RawMessage
	err := retry.Do(ctx, c.policy, func(ctx context.Context) error {
		var callErr error
		result, callErr = c.call(ctx, method, []interface{}{rollupID})
		return callErr
	})
	if err != nil {
		return nil, err
	}

	// A null result means no certificate exists for this rollup yet.
	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return nil, nil
	}

	var header CertificateHeader
	if err := json.Unmarshal(result, &header); err != nil {
		return nil, fmt.Errorf("failed to decode certificate header: %v", err)
	}
	return &header, nil
}

func (c *Client) call(ctx context.Context, method string, params []interface{}) (json.RawMessage, error) {
	start := time.Now()
	result, err := c.doCall(ctx, method, params)
	metrics.ObserveUpstream("agglayer", method, start, err)
	return result, err
}

func (c *Client) doCall(ctx context.Context, method string, params []interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agglayer request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agglayer %s status=%d", method, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}
	return rpcResp.Result, nil
}

package agglayer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAggLayer(t *testing.T, handler func(method string, params []interface{}) (interface{}, *RPCError)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "2.0", req.JSONRPC)

		result, rpcErr := handler(req.Method, req.Params)
		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestLatestSettledCertificateHeader(t *testing.T) {
	srv := fakeAggLayer(t, func(method string, params []interface{}) (interface{}, *RPCError) {
		assert.Equal(t, "interop_getLatestSettledCertificateHeader", method)
		require.Len(t, params, 1)
		assert.EqualValues(t, 2, params[0])

		return map[string]interface{}{
			"height":                  7,
			"epoch_number":            42,
			"certificate_index":       0,
			"certificate_id":          "0xabc123",
			"new_local_exit_root":     "0xdef456",
			"metadata":                "0x00",
			"status":                  "Settled",
			"settlement_tx_hash":      "0xfeed",
			"settlement_block_number": 1234,
		}, nil
	})
	defer srv.Close()

	header, err := NewClient(srv.URL).LatestSettledCertificateHeader(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, header)

	assert.Equal(t, uint64(7), header.Height)
	require.NotNil(t, header.EpochNumber)
	assert.Equal(t, uint64(42), *header.EpochNumber)
	assert.Equal(t, "0xabc123", header.CertificateID)
	assert.Equal(t, StatusSettled, header.Status)
	assert.True(t, header.Settled())
	assert.Equal(t, uint64(1234), header.SettlementBlockNumber)
}

func TestNullResultMeansNoCertificate(t *testing.T) {
	srv := fakeAggLayer(t, func(method string, params []interface{}) (interface{}, *RPCError) {
		return nil, nil
	})
	defer srv.Close()

	header, err := NewClient(srv.URL).LatestPendingCertificateHeader(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, header)
}

func TestRPCErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := fakeAggLayer(t, func(method string, params []interface{}) (interface{}, *RPCError) {
		calls.Add(1)
		return nil, &RPCError{Code: -32601, Message: "Method not found"}
	})
	defer srv.Close()

	_, err := NewClient(srv.URL).LatestSettledCertificateHeader(context.Background(), 1)
	require.Error(t, err)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32601, rpcErr.Code)
	assert.EqualValues(t, 1, calls.Load(), "application errors must not be retried")
}

func TestHTTPErrorIsRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "try later", http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0", "id": 1, "result": nil,
		})
	}))
	defer srv.Close()

	header, err := NewClient(srv.URL).LatestSettledCertificateHeader(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, header)
	assert.EqualValues(t, 3, calls.Load())
}

func TestCertificateDataDegradesPerSide(t *testing.T) {
	srv := fakeAggLayer(t, func(method string, params []interface{}) (interface{}, *RPCError) {
		if method == "interop_getLatestSettledCertificateHeader" {
			return map[string]interface{}{"height": 1, "status": "Settled"}, nil
		}
		return nil, &RPCError{Code: -32000, Message: "internal"}
	})
	defer srv.Close()

	data := NewClient(srv.URL).CertificateData(context.Background(), 1)
	require.NotNil(t, data.Settled)
	assert.Equal(t, StatusSettled, data.Settled.Status)
	assert.Nil(t, data.Pending)
}

func TestReachable(t *testing.T) {
	srv := fakeAggLayer(t, func(method string, params []interface{}) (interface{}, *RPCError) {
		return nil, &RPCError{Code: -32602, Message: "rollup not found"}
	})

	client := NewClient(srv.URL)
	require.NoError(t, client.Reachable(context.Background()))

	srv.Close()
	require.Error(t, NewClient(srv.URL).Reachable(context.Background()))
}

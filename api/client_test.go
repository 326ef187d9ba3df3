package api

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient points a client at a fake server for both RPC and price
// lookups
func testClient(url string) *Client {
	cfg := DefaultConfig()
	cfg.Endpoints.BaseRPC = url
	cfg.Endpoints.PriceAPI = url
	cfg.RequestTimeoutSeconds = 2
	return NewClientWithConfig(cfg)
}

func TestGasPrice(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotMethod, _ = payload["method"].(string)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x3b9aca00"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	wei, err := client.GasPrice()
	require.NoError(t, err)

	assert.Equal(t, "eth_gasPrice", gotMethod)
	assert.Zero(t, wei.Cmp(big.NewInt(1000000000)))
}

func TestGasPricesDerivesTiers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x3b9aca00"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	gas, err := client.GasPrices()
	require.NoError(t, err)

	assert.InDelta(t, 1.0, gas.StandardGwei, 1e-9)
	assert.InDelta(t, 1.2, gas.FastGwei, 1e-9)
	assert.InDelta(t, 0.8, gas.SafeGwei, 1e-9)
	assert.Zero(t, gas.WeiPrice.Cmp(big.NewInt(1000000000)))
	assert.WithinDuration(t, time.Now(), gas.Timestamp, 5*time.Second)
}

func TestGasPriceErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"rpc error object", `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found"}}`, ErrRequestFailed},
		{"null result", `{"jsonrpc":"2.0","id":1,"result":null}`, ErrMalformedResponse},
		{"non-string result", `{"jsonrpc":"2.0","id":1,"result":42}`, ErrMalformedResponse},
		{"non-hex result", `{"jsonrpc":"2.0","id":1,"result":"0xzz"}`, ErrMalformedResponse},
		{"undecodable body", `not json at all`, ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := testClient(server.URL).GasPrice()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGasPriceTransportFailures(t *testing.T) {
	// Non-200 status
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	client := testClient(server.URL)
	_, err := client.GasPrice()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)

	// Connection refused
	server.Close()
	_, err = client.GasPrice()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestGetTokenPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("contract_addresses"), "0x833589")
		w.Write([]byte(`{"0x833589fcd6edb6e08f4c7c32d4f71b54bda02913":{"usd":0.9998}}`))
	}))
	defer server.Close()

	// Lookup works with the checksummed form even though the API keys
	// responses by lowercase address
	client := testClient(server.URL)
	price, err := client.GetTokenPrice("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913")
	require.NoError(t, err)

	assert.Equal(t, "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", price.ContractAddress)
	assert.InDelta(t, 0.9998, price.USD.InexactFloat64(), 1e-9)
}

func TestGetTokenPriceNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).GetTokenPrice("0x0000000000000000000000000000000000000001")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ethereum":{"usd":3500.25}}`))
	}))
	defer server.Close()

	price, err := testClient(server.URL).GetPrice("ethereum")
	require.NoError(t, err)
	assert.Equal(t, "ethereum", price.Symbol)
	assert.InDelta(t, 3500.25, price.USD.InexactFloat64(), 1e-9)
}

func TestGetPriceErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown coin", `{}`, ErrNotFound},
		{"missing usd quote", `{"ethereum":{}}`, ErrMalformedResponse},
		{"garbage body", `<html>rate limited</html>`, ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := testClient(server.URL).GetPrice("ethereum")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseHexHelpers(t *testing.T) {
	n, err := parseHexUint("0x1b4")
	require.NoError(t, err)
	assert.Equal(t, uint64(436), n)

	big1, err := parseHexBigInt("0x3b9aca00")
	require.NoError(t, err)
	assert.Zero(t, big1.Cmp(big.NewInt(1000000000)))

	_, err = parseHexBigInt("0xzz")
	assert.Error(t, err)

	_, err = parseHexBigInt("")
	assert.Error(t, err)
}

func TestWeiToGwei(t *testing.T) {
	assert.Zero(t, weiToGwei(nil))
	assert.InDelta(t, 1.5, weiToGwei(big.NewInt(1500000000)), 1e-9)
	assert.InDelta(t, 0.001, weiToGwei(big.NewInt(1000000)), 1e-9)
}

func TestNetworkAccessors(t *testing.T) {
	cfg := DefaultConfig()
	client := NewClientWithConfig(cfg)
	assert.Equal(t, NetworkMainnet, client.Network())
	assert.False(t, client.IsTestnet())
	assert.Equal(t, MainnetBaseRPC, client.RPCURL())

	cfg = DefaultConfig()
	cfg.Network = NetworkTestnet
	client = NewClientWithConfig(cfg)
	assert.True(t, client.IsTestnet())
	assert.Equal(t, TestnetBaseRPC, client.RPCURL())
}

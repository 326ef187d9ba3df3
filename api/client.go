package api

// API Client-
//
// Files:
//   config.go - network constants and yaml config load/save
//   types.go  - struct definitions and sentinel errors
//   client.go - core client functionality (client struct, newClient, helpers)
//   gas.go    - base gas price functions (eth_gasPrice, fee tiers)
//   price.go  - coingecko price lookups (token contract, coin id)
//
// Usage:
//   client := api.NewClient()
//   gas, err := client.GasPrices()                     // from gas.go
//   price, err := client.GetTokenPrice("0x8335...13")  // from price.go

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/params"
	"github.com/rs/zerolog"
)

// Client handles calls to the Base RPC and the price API
type Client struct {
	httpClient *http.Client
	cfg        *Config
	log        zerolog.Logger
}

// NewClient creates a client from the on-disk configuration
func NewClient() *Client {
	cfg, err := LoadConfig()
	if err != nil {
		// Unreadable config falls back to defaults
		cfg = DefaultConfig()
	}
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig creates a client with an explicit configuration
func NewClientWithConfig(cfg *Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		},
		cfg: cfg,
		log: zerolog.New(os.Stderr).With().Timestamp().Str("component", "api").Logger(),
	}
}

// Network returns the active network name
func (c *Client) Network() string {
	return c.cfg.Network
}

// IsTestnet returns true if the client is using Base Goerli
func (c *Client) IsTestnet() bool {
	return c.cfg.Network == NetworkTestnet
}

// RPCURL returns the RPC endpoint for the active network
func (c *Client) RPCURL() string {
	if c.IsTestnet() {
		return c.cfg.Endpoints.BaseTestnetRPC
	}
	return c.cfg.Endpoints.BaseRPC
}

// postJSON sends a POST request with a JSON payload
func (c *Client) postJSON(url string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	resp, err := c.httpClient.Post(url, "application/json", strings.NewReader(string(jsonData)))
	if err != nil {
		c.log.Debug().Err(err).Str("url", url).Msg("rpc request failed")
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode != 200 {
		c.log.Debug().Int("status", resp.StatusCode).Str("url", url).Msg("rpc returned non-200")
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, string(body))
	}

	return body, nil
}

// getJSON sends a GET request and decodes the JSON response into out
func (c *Client) getJSON(url string, out interface{}) error {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		c.log.Debug().Err(err).Str("url", url).Msg("request failed")
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading body: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode != 200 {
		c.log.Debug().Int("status", resp.StatusCode).Str("url", url).Msg("request returned non-200")
		return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return nil
}

// Helper to convert a 0x-prefixed hex quantity to uint64
func parseHexUint(hexStr string) (uint64, error) {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	return strconv.ParseUint(hexStr, 16, 64)
}

// Helper to convert a 0x-prefixed hex quantity to big.Int
func parseHexBigInt(hexStr string) (*big.Int, error) {
	trimmed := strings.TrimPrefix(hexStr, "0x")

	value := new(big.Int)
	if _, ok := value.SetString(trimmed, 16); !ok {
		return nil, fmt.Errorf("invalid hex value: %s", hexStr)
	}

	return value, nil
}

// Helper to convert wei to gwei for display
func weiToGwei(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}

	gwei := new(big.Float).SetInt(wei)
	gwei.Quo(gwei, big.NewFloat(params.GWei))

	result, _ := gwei.Float64()
	return result
}

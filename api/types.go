package api

import (
	"errors"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel errors wrapped by every client method, for callers to match
// with errors.Is
var (
	// ErrRequestFailed covers transport failures (connect, timeout,
	// non-200 status) and errors reported by the RPC service itself
	ErrRequestFailed = errors.New("request failed")

	// ErrMalformedResponse marks a body that couldn't be decoded or is
	// missing required fields
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNotFound means the service has no data for the requested asset
	ErrNotFound = errors.New("not found")
)

// TokenPrice is the USD price of a token contract on Base
type TokenPrice struct {
	ContractAddress string          `json:"contract_address"`
	USD             decimal.Decimal `json:"usd"`
}

// PriceData represents cryptocurrency price information by coin id
type PriceData struct {
	Symbol string          `json:"symbol"`
	USD    decimal.Decimal `json:"usd"`
}

// GasPrices holds the current Base gas price tiers in gwei
type GasPrices struct {
	FastGwei     float64   `json:"fast"`
	StandardGwei float64   `json:"standard"`
	SafeGwei     float64   `json:"safe"`
	WeiPrice     *big.Int  `json:"-"`
	Timestamp    time.Time `json:"timestamp"`
}

// RPCResponse represents a JSON-RPC 2.0 response envelope
type RPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Result  interface{} `json:"result"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

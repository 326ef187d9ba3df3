package api

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"
)

// Gas tier multipliers applied to the node's reported price
const (
	gasFastFactor = 1.2
	gasSafeFactor = 0.8
)

// GasPrice fetches the current gas price in wei via eth_gasPrice
func (c *Client) GasPrice() (*big.Int, error) {
	payload := map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "eth_gasPrice",
		"params":  []interface{}{},
		"id":      1,
	}

	response, err := c.postJSON(c.RPCURL(), payload)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gas price: %w", err)
	}

	var rpcResp RPCResponse
	if err := json.Unmarshal(response, &rpcResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if rpcResp.Error != nil {
		return nil, fmt.Errorf("%w: rpc error %d: %s", ErrRequestFailed, rpcResp.Error.Code, rpcResp.Error.Message)
	}

	if rpcResp.Result == nil {
		return nil, fmt.Errorf("%w: no result in response", ErrMalformedResponse)
	}

	gasPriceStr, ok := rpcResp.Result.(string)
	if !ok {
		return nil, fmt.Errorf("%w: gas price is not a hex quantity", ErrMalformedResponse)
	}

	gasPrice, err := parseHexBigInt(gasPriceStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return gasPrice, nil
}

// GasPrices fetches the gas price and derives fast/standard/safe tiers
// in gwei
func (c *Client) GasPrices() (*GasPrices, error) {
	wei, err := c.GasPrice()
	if err != nil {
		return nil, err
	}

	standard := weiToGwei(wei)

	return &GasPrices{
		FastGwei:     standard * gasFastFactor,
		StandardGwei: standard,
		SafeGwei:     standard * gasSafeFactor,
		WeiPrice:     wei,
		Timestamp:    time.Now(),
	}, nil
}

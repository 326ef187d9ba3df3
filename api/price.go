package api

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// GetTokenPrice fetches the USD price of a Base token by its contract
// address. The price API keys results by lowercase contract address.
func (c *Client) GetTokenPrice(contractAddress string) (*TokenPrice, error) {
	url := fmt.Sprintf("%s/simple/token_price/base?contract_addresses=%s&vs_currencies=usd",
		c.cfg.Endpoints.PriceAPI, contractAddress)

	var result map[string]map[string]float64
	if err := c.getJSON(url, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch token price: %w", err)
	}

	entry, exists := result[strings.ToLower(contractAddress)]
	if !exists {
		return nil, fmt.Errorf("%w: no price for contract %s", ErrNotFound, contractAddress)
	}

	usd, exists := entry["usd"]
	if !exists {
		return nil, fmt.Errorf("%w: missing usd quote for %s", ErrMalformedResponse, contractAddress)
	}

	return &TokenPrice{
		ContractAddress: contractAddress,
		USD:             decimal.NewFromFloat(usd),
	}, nil
}

// GetPrice fetches the USD price of a coin by its CoinGecko id, for
// example "ethereum" or "bitcoin"
func (c *Client) GetPrice(id string) (*PriceData, error) {
	url := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", c.cfg.Endpoints.PriceAPI, id)

	var result map[string]map[string]float64
	if err := c.getJSON(url, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch price: %w", err)
	}

	entry, exists := result[id]
	if !exists {
		return nil, fmt.Errorf("%w: no price for %s", ErrNotFound, id)
	}

	usd, exists := entry["usd"]
	if !exists {
		return nil, fmt.Errorf("%w: missing usd quote for %s", ErrMalformedResponse, id)
	}

	return &PriceData{
		Symbol: id,
		USD:    decimal.NewFromFloat(usd),
	}, nil
}

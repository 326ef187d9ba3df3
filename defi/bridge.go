package defi

import "fmt"

// Bridge fee schedule for the official Base bridge
const (
	BridgeBaseFee    = 0.001  // flat fee in the bridged token
	BridgePercentFee = 0.0005 // 0.05% of the bridged amount

	BridgeProvider      = "Base Official Bridge"
	BridgeEstimatedTime = "2-5 minutes"
)

// BridgeQuote describes the cost of moving tokens between chains
type BridgeQuote struct {
	FromChain     string  `json:"from_chain"`
	ToChain       string  `json:"to_chain"`
	Token         string  `json:"token"`
	AmountIn      float64 `json:"amount_in"`
	Fee           float64 `json:"bridge_fee"`
	AmountOut     float64 `json:"amount_out"`
	EstimatedTime string  `json:"estimated_time"`
	Provider      string  `json:"provider"`
}

// QuoteBridge estimates the fee and output of bridging an amount of a
// token between two chains
func QuoteBridge(fromChain, toChain, token string, amount float64) (*BridgeQuote, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("bridge amount must be positive, got %g", amount)
	}

	fee := BridgeBaseFee + amount*BridgePercentFee
	if amount <= fee {
		return nil, fmt.Errorf("amount %g does not cover the bridge fee %g", amount, fee)
	}

	return &BridgeQuote{
		FromChain:     fromChain,
		ToChain:       toChain,
		Token:         token,
		AmountIn:      amount,
		Fee:           fee,
		AmountOut:     amount - fee,
		EstimatedTime: BridgeEstimatedTime,
		Provider:      BridgeProvider,
	}, nil
}

package defi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFarmingOpportunitiesSortedByAPY(t *testing.T) {
	opportunities := FarmingOpportunities()
	require.Len(t, opportunities, 3)

	for i := 1; i < len(opportunities); i++ {
		assert.GreaterOrEqual(t, opportunities[i-1].APY, opportunities[i].APY)
	}

	// BaseSwap leads with the highest listed yield
	assert.Equal(t, "BaseSwap", opportunities[0].Protocol)
	assert.Equal(t, "USDC/USDbC", opportunities[0].Pair)
	assert.InDelta(t, 15.2, opportunities[0].APY, 1e-12)
}

func TestFarmingOpportunitiesFields(t *testing.T) {
	for _, opp := range FarmingOpportunities() {
		assert.NotEmpty(t, opp.Protocol)
		assert.NotEmpty(t, opp.Pair)
		assert.Greater(t, opp.APY, 0.0)
		assert.Greater(t, opp.TVLUSD, 0.0)
		assert.Contains(t, []string{"Low", "Medium", "High"}, opp.RiskLevel)
		assert.Greater(t, opp.FeeTierBps, 0)
	}
}

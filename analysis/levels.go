package analysis

import "sort"

// DefaultLevelWindow is the lookaround used when none is specified
const DefaultLevelWindow = 5

// Levels holds detected support and resistance price levels,
// deduplicated and sorted ascending
type Levels struct {
	Support    []float64 `json:"support"`
	Resistance []float64 `json:"resistance"`
}

// SupportResistance scans a price series for local extrema. A price is
// support when no price within the window on either side is below it,
// and resistance when none is above it. The series must cover at least
// 2*window+1 points, otherwise both level lists are empty.
func SupportResistance(prices []float64, window int) Levels {
	levels := Levels{Support: []float64{}, Resistance: []float64{}}
	if window <= 0 || len(prices) < 2*window+1 {
		return levels
	}

	for i := window; i < len(prices)-window; i++ {
		isSupport := true
		isResistance := true
		for j := -window; j <= window; j++ {
			if j == 0 {
				continue
			}
			if prices[i] > prices[i+j] {
				isSupport = false
			}
			if prices[i] < prices[i+j] {
				isResistance = false
			}
		}
		if isSupport {
			levels.Support = append(levels.Support, prices[i])
		}
		if isResistance {
			levels.Resistance = append(levels.Resistance, prices[i])
		}
	}

	levels.Support = dedupSorted(levels.Support)
	levels.Resistance = dedupSorted(levels.Resistance)
	return levels
}

// helper to sort ascending and drop duplicate levels
func dedupSorted(values []float64) []float64 {
	if len(values) < 2 {
		return values
	}
	sort.Float64s(values)

	out := values[:1]
	for _, v := range values[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

package stats

import "sort"

// Ranks returns the 1-based ranks of values. Ties get the average of the
// ranks they span.
func Ranks(values []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[order[j+1]] == values[order[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// PlottingPositions returns the Weibull plotting positions rank/(n+1) of values.
func PlottingPositions(values []float64) []float64 {
	ranks := Ranks(values)
	n := float64(len(values))
	for i := range ranks {
		ranks[i] /= n + 1
	}
	return ranks
}

// Package ranking joins the two pipeline branches and orders channels by
// their combined dense ranks.
package ranking

import "sort"

// DenseRanks assigns a dense rank to every value, higher values ranking
// first. Equal values share a rank and the next distinct value takes the
// following rank with no gap: [10,10,5] yields [1,1,2].
func DenseRanks(values []float64) []int {
	if len(values) == 0 {
		return nil
	}

	distinct := make([]float64, 0, len(values))
	seen := make(map[float64]bool, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	rankOf := make(map[float64]int, len(distinct))
	for i, v := range distinct {
		rankOf[v] = i + 1
	}

	ranks := make([]int, len(values))
	for i, v := range values {
		ranks[i] = rankOf[v]
	}
	return ranks
}

package match

import (
	"cmp"
	"slices"
)

// DefaultTopN is the number of keyboards kept per ranking.
const DefaultTopN = 10

// Rankings holds the two top-N lists.
type Rankings struct {
	ByCoverage []Result `json:"top10ByCoverage"`
	ByOverlap  []Result `json:"top10ByOverlap"`
}

// Rank builds both rankings from results.
func Rank(results []Result, n int) Rankings {
	return Rankings{
		ByCoverage: RankByCoverage(results, n),
		ByOverlap:  RankByOverlap(results, n),
	}
}

// RankByCoverage orders by coverage, then overlap, both descending, and keeps
// the first n. Keyboards tied on both keep their input order.
func RankByCoverage(results []Result, n int) []Result {
	return rank(results, n, func(a, b Result) int {
		if c := cmp.Compare(b.CoveragePercentage, a.CoveragePercentage); c != 0 {
			return c
		}
		return cmp.Compare(b.OverlapPercentage, a.OverlapPercentage)
	})
}

// RankByOverlap orders by overlap, then coverage, both descending, and keeps
// the first n. Keyboards tied on both keep their input order.
func RankByOverlap(results []Result, n int) []Result {
	return rank(results, n, func(a, b Result) int {
		if c := cmp.Compare(b.OverlapPercentage, a.OverlapPercentage); c != 0 {
			return c
		}
		return cmp.Compare(b.CoveragePercentage, a.CoveragePercentage)
	})
}

func rank(results []Result, n int, compare func(a, b Result) int) []Result {
	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, compare)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

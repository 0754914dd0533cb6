package numeric

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Euclidean returns the L2 distance between two equal-length rows, via
// gonum/floats.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean returns the squared L2 distance, computed by squaring
// Euclidean's result.
func SquaredEuclidean(a, b []float64) float64 {
	d := Euclidean(a, b)
	return d * d
}

// PairwiseSquaredEuclidean returns the |a| x |b| matrix of squared
// distances between every row of a and every row of b.
func PairwiseSquaredEuclidean(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(b))
		for j := range b {
			out[i][j] = SquaredEuclidean(a[i], b[j])
		}
	}
	return out
}

// KthNearestNeighbor returns the distance from points[idx] to its k-th
// nearest neighbor among the other rows (k=1 is the nearest neighbor),
// following SPEA-II's density estimate (spec.md §4.3.5).
func KthNearestNeighbor(points [][]float64, idx, k int) float64 {
	dists := sortedDistancesFrom(points, idx)
	if len(dists) == 0 {
		return 0
	}
	if k-1 >= len(dists) {
		return dists[len(dists)-1]
	}
	return dists[k-1]
}

// SortedDistancesWithin returns the ascending distances from points[self]
// to every other row named in candidates, used by SPEA-II's progressive
// nearest-neighbor truncation tiebreak.
func SortedDistancesWithin(points [][]float64, self int, candidates []int) []float64 {
	out := make([]float64, 0, len(candidates))
	for _, j := range candidates {
		if j == self {
			continue
		}
		out = append(out, Euclidean(points[self], points[j]))
	}
	sort.Float64s(out)
	return out
}

func sortedDistancesFrom(points [][]float64, idx int) []float64 {
	out := make([]float64, 0, len(points)-1)
	for j := range points {
		if j == idx {
			continue
		}
		out = append(out, Euclidean(points[idx], points[j]))
	}
	sort.Float64s(out)
	return out
}

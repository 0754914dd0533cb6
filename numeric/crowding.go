// Package numeric collects the reusable numerical primitives spec.md §4.6
// names: crowding distance, pairwise distance matrices, perpendicular
// distance to a reference ray, p-norm curvature fitting, reference-vector
// angle association, hypervolume (exact in 2-D, Monte Carlo beyond), and
// Das-and-Dennis reference-point generation. Every function here is pure:
// it takes plain [][]float64 rows and returns plain values, independent of
// the moea package's Population/Individual types, so survival operators in
// package survival are the only place the two packages meet.
package numeric

import (
	"math"
	"sort"
)

// CrowdingDistance computes the NSGA-II crowding distance of every row in
// fitness (assumed to be a single non-dominated front), following the
// teacher's CrowdingDistance (algorithms/nsga2.go): boundary individuals
// for each objective get +Inf, interior individuals accumulate the
// normalized gap to their neighbors, and an objective with zero range
// (every row identical on that objective) contributes nothing.
func CrowdingDistance(fitness [][]float64) []float64 {
	n := len(fitness)
	dist := make([]float64, n)
	if n == 0 {
		return dist
	}
	if n <= 2 {
		for i := range dist {
			dist[i] = math.Inf(1)
		}
		return dist
	}

	m := len(fitness[0])
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for obj := 0; obj < m; obj++ {
		sort.Slice(order, func(a, b int) bool {
			return fitness[order[a]][obj] < fitness[order[b]][obj]
		})
		dist[order[0]] = math.Inf(1)
		dist[order[n-1]] = math.Inf(1)
		lo, hi := fitness[order[0]][obj], fitness[order[n-1]][obj]
		span := hi - lo
		if span == 0 {
			continue
		}
		for i := 1; i < n-1; i++ {
			if math.IsInf(dist[order[i]], 1) {
				continue
			}
			dist[order[i]] += (fitness[order[i+1]][obj] - fitness[order[i-1]][obj]) / span
		}
	}
	return dist
}

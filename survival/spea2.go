package survival

import (
	"math"
	"sort"

	moea "github.com/andresliszt/moo-go"
	"github.com/andresliszt/moo-go/numeric"
	"golang.org/x/exp/rand"
)

// SPEA2 implements the strength/raw-fitness/density survival scheme
// (spec.md §4.3.5), grounded in the other_examples Mayfly
// implementation's selectByNSGA2-adjacent strength-Pareto machinery. Like
// REVEA and IBEA-HV, it does not assign front ranks; the driver's own
// FastNonDominatedSort call after Survive returns restores Rank for
// downstream consumers.
type SPEA2 struct{}

// Survive implements moea.Survivor.
func (SPEA2) Survive(pop *moea.Population, mu int, rng *rand.Rand) (*moea.Population, error) {
	n := pop.Len()
	strength := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && moea.Dominates(pop.At(i), pop.At(j)) {
				strength[i]++
			}
		}
	}
	raw := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && moea.Dominates(pop.At(j), pop.At(i)) {
				raw[i] += strength[j]
			}
		}
	}

	k := int(math.Sqrt(float64(n)))
	if k < 1 {
		k = 1
	}
	score := make([]float64, n)
	for i := 0; i < n; i++ {
		density := 1.0 / (numeric.KthNearestNeighbor(pop.Fitness, i, k) + 2)
		score[i] = float64(raw[i]) + density
	}
	for i := 0; i < n; i++ {
		pop.Score[i] = score[i]
	}

	nonDominated := make([]int, 0, n)
	rest := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if raw[i] == 0 {
			nonDominated = append(nonDominated, i)
		} else {
			rest = append(rest, i)
		}
	}

	switch {
	case len(nonDominated) == mu:
		return pop.Slice(nonDominated), nil
	case len(nonDominated) > mu:
		return pop.Slice(truncateByNeighborDistance(pop.Fitness, nonDominated, mu)), nil
	default:
		sort.SliceStable(rest, func(a, b int) bool {
			if score[rest[a]] != score[rest[b]] {
				return score[rest[a]] < score[rest[b]]
			}
			return rest[a] < rest[b]
		})
		need := mu - len(nonDominated)
		if need > len(rest) {
			need = len(rest)
		}
		selected := append(append([]int{}, nonDominated...), rest[:need]...)
		return pop.Slice(selected), nil
	}
}

// truncateByNeighborDistance repeatedly removes the most crowded
// individual — the one whose sorted distance vector to the remaining
// active set is lexicographically smallest — until exactly mu remain.
func truncateByNeighborDistance(fitness [][]float64, candidates []int, mu int) []int {
	active := append([]int{}, candidates...)
	for len(active) > mu {
		worstPos := 0
		worstDistances := numeric.SortedDistancesWithin(fitness, active[0], active)
		for i := 1; i < len(active); i++ {
			d := numeric.SortedDistancesWithin(fitness, active[i], active)
			if lexLess(d, worstDistances) {
				worstPos, worstDistances = i, d
			}
		}
		active = append(active[:worstPos], active[worstPos+1:]...)
	}
	return active
}

// lexLess reports whether a represents a more crowded point than b: the
// first index at which their sorted neighbor-distance vectors differ
// decides, matching SPEA-II's progressive tiebreak.
func lexLess(a, b []float64) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

package survival

import (
	moea "github.com/andresliszt/moo-go"
	"github.com/andresliszt/moo-go/numeric"
	"golang.org/x/exp/rand"
)

// NSGA2 survives individuals front by front, filling out the last
// admitted front by crowding distance. Adapted directly from the teacher's
// NSGAII.Run survival step (algorithms/nsga2.go): full fronts are kept
// whole, the splitting front is ranked by CrowdingDistance descending.
type NSGA2 struct{}

// Survive implements moea.Survivor.
func (NSGA2) Survive(pop *moea.Population, mu int, rng *rand.Rand) (*moea.Population, error) {
	fronts := moea.FastNonDominatedSort(pop)
	selected, splitIdx := takeFullFronts(fronts, mu)
	for _, f := range fronts[:boundedIndex(splitIdx, len(fronts))] {
		dist := numeric.CrowdingDistance(fitnessRows(pop, f.Indices))
		applyScores(pop, f.Indices, dist)
	}
	if splitIdx == -1 || len(selected) == mu {
		return pop.Slice(selected), nil
	}

	front := fronts[splitIdx].Indices
	dist := numeric.CrowdingDistance(fitnessRows(pop, front))
	applyScores(pop, front, dist)
	picked := pickTopByScoreDesc(front, dist, mu-len(selected))
	selected = append(selected, picked...)
	return pop.Slice(selected), nil
}

func boundedIndex(splitIdx, n int) int {
	if splitIdx == -1 {
		return n
	}
	return splitIdx
}

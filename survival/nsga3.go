package survival

import (
	"errors"
	"math"

	moea "github.com/andresliszt/moo-go"
	"github.com/andresliszt/moo-go/numeric"
	"golang.org/x/exp/rand"
)

// NSGA3 survives full fronts, then fills the splitting front by
// reference-point niching: perpendicular-distance association to a
// Das-and-Dennis reference set, then repeatedly filling the
// least-populated niche (spec.md §4.3.2).
type NSGA3 struct {
	ReferencePoints [][]float64
}

// NewNSGA3 builds reference points with the Das-and-Dennis generator for
// numObjectives objectives and the given division count.
func NewNSGA3(numObjectives, divisions int) *NSGA3 {
	return &NSGA3{ReferencePoints: numeric.DasDennisReferencePoints(divisions, numObjectives)}
}

// Survive implements moea.Survivor.
func (s *NSGA3) Survive(pop *moea.Population, mu int, rng *rand.Rand) (*moea.Population, error) {
	if len(s.ReferencePoints) == 0 {
		return nil, &moea.ConfigurationError{Field: "ReferencePoints", Err: errors.New("NSGA-III requires at least one reference point")}
	}
	fronts := moea.FastNonDominatedSort(pop)
	selected, splitIdx := takeFullFronts(fronts, mu)
	if splitIdx == -1 || len(selected) == mu {
		return pop.Slice(selected), nil
	}

	splitting := fronts[splitIdx].Indices
	candidates := append(append([]int{}, selected...), splitting...)
	rows := fitnessRows(pop, candidates)
	ideal := numeric.IdealPoint(rows)
	nadir := numeric.NadirPoint(rows)
	normalized := numeric.Normalize(rows, ideal, nadir)

	if len(s.ReferencePoints[0]) != len(ideal) {
		return nil, &moea.ConfigurationError{Field: "ReferencePoints", Err: errors.New("reference point dimension does not match objective count")}
	}

	assoc := make([]int, len(candidates))
	dist := make([]float64, len(candidates))
	for i, row := range normalized {
		best, bestDist := 0, math.Inf(1)
		for j, ref := range s.ReferencePoints {
			d := numeric.PerpendicularDistance(row, ref)
			if d < bestDist {
				bestDist, best = d, j
			}
		}
		assoc[i] = best
		dist[i] = bestDist
	}

	nicheCount := make([]int, len(s.ReferencePoints))
	for i := range selected {
		nicheCount[assoc[i]]++
	}

	splitStart := len(selected)
	need := mu - len(selected)
	chosen := nicheFill(splitting, assoc[splitStart:], dist[splitStart:], nicheCount, need, rng)
	selected = append(selected, chosen...)
	return pop.Slice(selected), nil
}

// nicheFill implements spec.md §4.3.2's niching loop: pick the
// least-populated niche (ties broken by smallest niche index), take its
// closest unclaimed candidate if the niche is currently empty or a random
// unclaimed candidate otherwise, and repeat until need candidates are
// chosen or no niche has any candidates left.
func nicheFill(splitIndices []int, assoc []int, dist []float64, nicheCount []int, need int, rng *rand.Rand) []int {
	byNiche := make(map[int][]int)
	for pos := range splitIndices {
		n := assoc[pos]
		byNiche[n] = append(byNiche[n], pos)
	}
	used := make(map[int]bool, len(splitIndices))
	chosen := make([]int, 0, need)

	for len(chosen) < need {
		bestNiche, bestCount := -1, math.MaxInt64
		for n, positions := range byNiche {
			if !hasUnclaimed(positions, used) {
				continue
			}
			c := nicheCount[n]
			if c < bestCount || (c == bestCount && n < bestNiche) {
				bestCount, bestNiche = c, n
			}
		}
		if bestNiche == -1 {
			break
		}
		positions := byNiche[bestNiche]
		var pick int
		if nicheCount[bestNiche] == 0 {
			pick = closestUnclaimed(positions, used, dist)
		} else {
			pick = randomUnclaimed(positions, used, rng)
		}
		used[pick] = true
		chosen = append(chosen, splitIndices[pick])
		nicheCount[bestNiche]++
	}
	return chosen
}

func hasUnclaimed(positions []int, used map[int]bool) bool {
	for _, p := range positions {
		if !used[p] {
			return true
		}
	}
	return false
}

func closestUnclaimed(positions []int, used map[int]bool, dist []float64) int {
	best, bestDist := -1, math.Inf(1)
	for _, p := range positions {
		if used[p] {
			continue
		}
		if dist[p] < bestDist {
			bestDist, best = dist[p], p
		}
	}
	return best
}

func randomUnclaimed(positions []int, used map[int]bool, rng *rand.Rand) int {
	available := make([]int, 0, len(positions))
	for _, p := range positions {
		if !used[p] {
			available = append(available, p)
		}
	}
	return available[rng.Intn(len(available))]
}

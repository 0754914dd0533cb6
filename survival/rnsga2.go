package survival

import (
	"errors"
	"sort"

	moea "github.com/andresliszt/moo-go"
	"github.com/andresliszt/moo-go/numeric"
	"golang.org/x/exp/rand"
)

// RNSGA2 survives full fronts, then fills the splitting front by
// proximity to a set of user-supplied reference points in normalized
// objective space, clearing points within Epsilon of an already-ranked
// point so the result does not cluster tightly around a single reference
// (spec.md §4.3.3).
type RNSGA2 struct {
	ReferencePoints [][]float64
	Epsilon         float64
}

// Survive implements moea.Survivor.
func (s *RNSGA2) Survive(pop *moea.Population, mu int, rng *rand.Rand) (*moea.Population, error) {
	if len(s.ReferencePoints) == 0 {
		return nil, &moea.ConfigurationError{Field: "ReferencePoints", Err: errors.New("R-NSGA-II requires at least one reference point")}
	}
	fronts := moea.FastNonDominatedSort(pop)
	selected, splitIdx := takeFullFronts(fronts, mu)
	for _, f := range fronts[:boundedIndex(splitIdx, len(fronts))] {
		score, err := s.proximityScores(pop, f.Indices)
		if err != nil {
			return nil, err
		}
		applyScores(pop, f.Indices, score)
	}
	if splitIdx == -1 || len(selected) == mu {
		return pop.Slice(selected), nil
	}

	front := fronts[splitIdx].Indices
	score, err := s.proximityScores(pop, front)
	if err != nil {
		return nil, err
	}
	applyScores(pop, front, score)
	picked := pickTopByScoreAsc(front, score, mu-len(selected))
	selected = append(selected, picked...)
	return pop.Slice(selected), nil
}

// proximityScores computes, for every candidate, the normalized Euclidean
// distance to its closest reference point, then applies epsilon-clearing:
// once a point is accepted (processed in ascending score order), every
// other point within Epsilon of it in normalized objective space is pushed
// to the back of the ranking so the front fill doesn't cluster entirely
// around one reference point.
func (s *RNSGA2) proximityScores(pop *moea.Population, idx []int) ([]float64, error) {
	rows := fitnessRows(pop, idx)
	ideal := numeric.IdealPoint(rows)
	nadir := numeric.NadirPoint(rows)

	if len(s.ReferencePoints[0]) != len(ideal) {
		return nil, &moea.ConfigurationError{Field: "ReferencePoints", Err: errors.New("reference point dimension does not match objective count")}
	}

	norm := numeric.Normalize(rows, ideal, nadir)
	normRefs := numeric.Normalize(s.ReferencePoints, ideal, nadir)

	score := make([]float64, len(idx))
	for i, row := range norm {
		best := closestRefDistance(row, normRefs)
		score[i] = best
	}

	order := make([]int, len(idx))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return score[order[a]] < score[order[b]] })

	cleared := make([]bool, len(idx))
	for _, pos := range order {
		if cleared[pos] {
			continue
		}
		for _, other := range order {
			if other == pos || cleared[other] {
				continue
			}
			if numeric.Euclidean(norm[pos], norm[other]) <= s.Epsilon {
				cleared[other] = true
				score[other] += 1e6
			}
		}
	}
	return score, nil
}

func closestRefDistance(row []float64, refs [][]float64) float64 {
	best := numeric.Euclidean(row, refs[0])
	for _, ref := range refs[1:] {
		if d := numeric.Euclidean(row, ref); d < best {
			best = d
		}
	}
	return best
}

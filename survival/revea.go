package survival

import (
	"errors"
	"math"
	"sort"

	moea "github.com/andresliszt/moo-go"
	"github.com/andresliszt/moo-go/numeric"
	"golang.org/x/exp/rand"
)

// REVEA survives by angle-penalized distance (APD) to a set of reference
// vectors that it owns and periodically refreshes — spec.md §9 names this
// the one case where a survival operator, rather than the driver's
// generic machinery, carries mutable state across generations.
type REVEA struct {
	Alpha            float64
	RefreshEvery     int
	TotalGenerations int

	initialVectors [][]float64
	vectors        [][]float64
	zmin, zmax     []float64
	generation     int
}

// NewREVEA builds initial reference vectors with the Das-and-Dennis
// generator and normalizes them to unit length, as spec.md §4.3.6 step 1
// describes.
func NewREVEA(numObjectives, divisions int, alpha float64, refreshEvery, totalGenerations int) *REVEA {
	refs := numeric.DasDennisReferencePoints(divisions, numObjectives)
	unit := make([][]float64, len(refs))
	for i, r := range refs {
		unit[i] = numeric.UnitVector(r)
	}
	vectors := make([][]float64, len(unit))
	for i, v := range unit {
		vectors[i] = append([]float64{}, v...)
	}
	return &REVEA{Alpha: alpha, RefreshEvery: refreshEvery, TotalGenerations: totalGenerations, initialVectors: unit, vectors: vectors}
}

// Survive implements moea.Survivor.
func (s *REVEA) Survive(pop *moea.Population, mu int, rng *rand.Rand) (*moea.Population, error) {
	if len(s.vectors) == 0 {
		return nil, &moea.ConfigurationError{Field: "ReferenceVectors", Err: errors.New("REVEA requires at least one reference vector")}
	}
	s.generation++

	rows := allFitnessRows(pop)
	curMin := numeric.IdealPoint(rows)
	curMax := numeric.NadirPoint(rows)
	if s.zmin == nil {
		s.zmin, s.zmax = curMin, curMax
	} else {
		for i := range s.zmin {
			if curMin[i] < s.zmin[i] {
				s.zmin[i] = curMin[i]
			}
			if curMax[i] > s.zmax[i] {
				s.zmax[i] = curMax[i]
			}
		}
	}

	translated := numeric.Translate(rows, curMin)
	assoc, theta := numeric.AssociateByAngle(translated, s.vectors)
	gamma := numeric.MinimumPairwiseAngle(s.vectors)

	t := float64(s.generation)
	tmax := float64(s.TotalGenerations)
	if tmax <= 0 {
		tmax = 1
	}
	m := float64(len(s.vectors[0]))

	apd := make([]float64, len(translated))
	zero := make([]float64, len(translated[0]))
	for i, row := range translated {
		j := assoc[i]
		norm := numeric.Euclidean(row, zero)
		penalty := 1.0
		if gamma[j] > 0 {
			penalty = 1 + m*math.Pow(t/tmax, s.Alpha)*theta[i]/gamma[j]
		}
		apd[i] = penalty * norm
		pop.Score[i] = -apd[i]
	}

	byNiche := make(map[int][]int)
	for i, j := range assoc {
		byNiche[j] = append(byNiche[j], i)
	}
	niches := make([]int, 0, len(byNiche))
	for j := range byNiche {
		niches = append(niches, j)
	}
	sort.Ints(niches)

	selected := make([]int, 0, mu)
	for _, j := range niches {
		members := byNiche[j]
		best := members[0]
		for _, candidate := range members[1:] {
			if apd[candidate] < apd[best] {
				best = candidate
			}
		}
		selected = append(selected, best)
	}

	selected = fillOrTrim(selected, apd, mu)

	if s.RefreshEvery > 0 && s.generation%s.RefreshEvery == 0 {
		s.refreshVectors()
	}
	return pop.Slice(selected), nil
}

func fillOrTrim(selected []int, apd []float64, mu int) []int {
	if len(selected) == mu {
		return selected
	}
	if len(selected) > mu {
		sort.SliceStable(selected, func(a, b int) bool {
			if apd[selected[a]] != apd[selected[b]] {
				return apd[selected[a]] < apd[selected[b]]
			}
			return selected[a] < selected[b]
		})
		return selected[:mu]
	}
	chosen := make(map[int]bool, len(selected))
	for _, i := range selected {
		chosen[i] = true
	}
	rest := make([]int, 0, len(apd)-len(selected))
	for i := range apd {
		if !chosen[i] {
			rest = append(rest, i)
		}
	}
	sort.SliceStable(rest, func(a, b int) bool {
		if apd[rest[a]] != apd[rest[b]] {
			return apd[rest[a]] < apd[rest[b]]
		}
		return rest[a] < rest[b]
	})
	need := mu - len(selected)
	if need > len(rest) {
		need = len(rest)
	}
	return append(selected, rest[:need]...)
}

// refreshVectors implements spec.md §4.3.6 step 5: v_i^{t+1} =
// normalize(v_i^0 (z_max - z_min)), using the widest ideal/nadir range
// observed over every Survive call so far (zmin/zmax are never reset).
func (s *REVEA) refreshVectors() {
	span := make([]float64, len(s.zmax))
	for i := range span {
		span[i] = s.zmax[i] - s.zmin[i]
	}
	next := make([][]float64, len(s.initialVectors))
	for i, v0 := range s.initialVectors {
		scaled := make([]float64, len(v0))
		for j := range v0 {
			scaled[j] = v0[j] * span[j]
		}
		next[i] = numeric.UnitVector(scaled)
	}
	s.vectors = next
}

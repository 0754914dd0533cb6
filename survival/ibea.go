package survival

import (
	"errors"
	"math"
	"sort"

	moea "github.com/andresliszt/moo-go"
	"github.com/andresliszt/moo-go/numeric"
	"golang.org/x/exp/rand"
)

// IBEAHV implements the hypervolume-indicator variant of IBEA (spec.md
// §4.3.7): feasible individuals are ranked by an indicator-based fitness
// and trimmed one worst-individual-at-a-time; infeasible individuals only
// fill remaining slots, ordered by total violation.
type IBEAHV struct {
	Reference []float64
	Kappa     float64
}

// Survive implements moea.Survivor.
func (s *IBEAHV) Survive(pop *moea.Population, mu int, rng *rand.Rand) (*moea.Population, error) {
	if len(s.Reference) == 0 {
		return nil, &moea.ConfigurationError{Field: "Reference", Err: errors.New("IBEA-HV requires a reference point")}
	}
	kappa := s.Kappa
	if kappa == 0 {
		kappa = 0.05
	}

	feasible := make([]int, 0, pop.Len())
	infeasible := make([]int, 0)
	for i := 0; i < pop.Len(); i++ {
		if pop.At(i).Feasible() {
			feasible = append(feasible, i)
		} else {
			infeasible = append(infeasible, i)
		}
	}

	rows := allFitnessRows(pop)
	ideal := numeric.IdealPoint(rows)
	nadir := numeric.NadirPoint(rows)

	if len(s.Reference) != len(ideal) {
		return nil, &moea.ConfigurationError{Field: "Reference", Err: errors.New("reference point dimension does not match objective count")}
	}

	norm := numeric.Normalize(rows, ideal, nadir)
	normRef := normalizeSingle(s.Reference, ideal, nadir)
	normIdeal := make([]float64, len(ideal))

	hv := func(points [][]float64) float64 {
		if len(normRef) == 2 {
			return numeric.Hypervolume2D(points, normRef)
		}
		return numeric.HypervolumeMonteCarlo(points, normRef, normIdeal, 1500, rng)
	}
	indicator := func(y, x int) float64 {
		hvX := hv([][]float64{norm[x]})
		if moea.Dominates(pop.At(x), pop.At(y)) {
			return hv([][]float64{norm[y]}) - hvX
		}
		return hv([][]float64{norm[x], norm[y]}) - hvX
	}

	var selected []int
	if len(feasible) >= mu {
		selected = environmentalSelection(feasible, indicator, kappa, mu)
	} else {
		selected = append([]int{}, feasible...)
		sort.SliceStable(infeasible, func(a, b int) bool {
			va, vb := pop.At(infeasible[a]).Violation(), pop.At(infeasible[b]).Violation()
			if va != vb {
				return va < vb
			}
			return infeasible[a] < infeasible[b]
		})
		need := mu - len(selected)
		if need > len(infeasible) {
			need = len(infeasible)
		}
		selected = append(selected, infeasible[:need]...)
	}
	return pop.Slice(selected), nil
}

// environmentalSelection runs IBEA's indicator-based fitness loop: every
// candidate's fitness starts as -sum(exp(-I(y,x)/kappa)), then the worst
// individual is removed one at a time, with every survivor's fitness
// corrected by the removed individual's contribution.
func environmentalSelection(candidates []int, indicator func(y, x int) float64, kappa float64, mu int) []int {
	active := append([]int{}, candidates...)
	fitness := make(map[int]float64, len(active))
	for _, x := range active {
		f := 0.0
		for _, y := range active {
			if y == x {
				continue
			}
			f += -math.Exp(-indicator(y, x) / kappa)
		}
		fitness[x] = f
	}

	for len(active) > mu {
		worstPos, worst := 0, active[0]
		for i, x := range active {
			if fitness[x] < fitness[worst] || (fitness[x] == fitness[worst] && x < worst) {
				worst, worstPos = x, i
			}
		}
		active = append(active[:worstPos], active[worstPos+1:]...)
		for _, x := range active {
			fitness[x] += math.Exp(-indicator(worst, x) / kappa)
		}
	}
	return active
}

func normalizeSingle(row, ideal, nadir []float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		span := nadir[i] - ideal[i]
		if span == 0 {
			continue
		}
		out[i] = (v - ideal[i]) / span
	}
	return out
}

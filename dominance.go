package moea

import "sort"

// Dominates reports whether a Pareto-dominates b under minimization of
// every objective, with feasibility taking precedence over objective
// values: a feasible individual always dominates an infeasible one, and
// between two infeasible individuals the one with smaller total violation
// dominates. Adapted from the teacher's NSGAIISolution dominance check,
// generalized with the feasibility rule spec.md §4.1 requires.
func Dominates(a, b Individual) bool {
	aFeasible, bFeasible := a.Feasible(), b.Feasible()
	switch {
	case aFeasible && !bFeasible:
		return true
	case !aFeasible && bFeasible:
		return false
	case !aFeasible && !bFeasible:
		av, bv := a.Violation(), b.Violation()
		if av != bv {
			return av < bv
		}
	}
	return dominatesFitness(a.Fitness(), b.Fitness())
}

func dominatesFitness(a, b []float64) bool {
	strictlyBetter := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}

// FastNonDominatedSort partitions pop into non-dominated fronts (front 0
// dominated by nothing, front 1 dominated only by front 0, and so on) and
// assigns each individual's Rank as a side effect. Ties are broken
// deterministically by original population index: every front lists its
// members in ascending index order.
func FastNonDominatedSort(pop *Population) []Front {
	n := pop.Len()
	dominatedBy := make([][]int, n)
	domCount := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if Dominates(pop.At(i), pop.At(j)) {
				dominatedBy[i] = append(dominatedBy[i], j)
			} else if Dominates(pop.At(j), pop.At(i)) {
				domCount[i]++
			}
		}
	}

	var fronts []Front
	current := make([]int, 0)
	for i := 0; i < n; i++ {
		if domCount[i] == 0 {
			pop.Rank[i] = 0
			current = append(current, i)
		}
	}

	rank := 0
	for len(current) > 0 {
		fronts = append(fronts, Front{Population: pop, Indices: current})
		next := make([]int, 0)
		for _, i := range current {
			for _, j := range dominatedBy[i] {
				domCount[j]--
				if domCount[j] == 0 {
					pop.Rank[j] = rank + 1
					next = append(next, j)
				}
			}
		}
		sort.Ints(next)
		rank++
		current = next
	}
	return fronts
}

// FrontCount returns one plus the highest Rank present in pop, i.e. the
// number of fronts a prior FastNonDominatedSort call produced.
func FrontCount(pop *Population) int {
	max := -1
	for _, r := range pop.Rank {
		if r > max {
			max = r
		}
	}
	return max + 1
}

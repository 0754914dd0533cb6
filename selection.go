package moea

import "golang.org/x/exp/rand"

// feasibilityWinner applies spec.md §4.2's feasibility rule to a candidate
// pair: a feasible individual always beats an infeasible one, and between
// two infeasible individuals the smaller total violation wins. ok is false
// when the pair is tied at this stage and an algorithm-specific tiebreaker
// must decide.
func feasibilityWinner(pop *Population, i, j int) (winner int, ok bool) {
	iFeasible, jFeasible := pop.At(i).Feasible(), pop.At(j).Feasible()
	switch {
	case iFeasible && !jFeasible:
		return i, true
	case !iFeasible && jFeasible:
		return j, true
	case !iFeasible && !jFeasible:
		vi, vj := pop.At(i).Violation(), pop.At(j).Violation()
		if vi < vj {
			return i, true
		}
		if vj < vi {
			return j, true
		}
	}
	return -1, false
}

// randomSelector runs a binary tournament that falls back to a coin flip
// once feasibility alone cannot separate the pair. Used by algorithms whose
// survival operator has already encoded objective-space preference into
// population membership (NSGA-III, IBEA-HV).
type randomSelector struct{}

// NewRandomSelector returns a Selector that breaks feasibility ties with a
// coin flip.
func NewRandomSelector() Selector { return randomSelector{} }

func (randomSelector) Select(pop *Population, rng *rand.Rand) int {
	i, j := rng.Intn(pop.Len()), rng.Intn(pop.Len())
	if winner, ok := feasibilityWinner(pop, i, j); ok {
		return winner
	}
	if rng.Float64() < 0.5 {
		return i
	}
	return j
}

// rankScoreSelector runs a binary tournament grounded in the teacher's
// TournamentSelect (nsga2.go): after the feasibility check, lower Rank
// wins, and remaining ties are broken by Score according to compare.
type rankScoreSelector struct {
	compare ScoreComparison
}

// NewRankScoreSelector returns a Selector comparing Rank then Score, used
// by NSGA-II, R-NSGA-II, AGE-MOEA, SPEA-II, and REVEA.
func NewRankScoreSelector(compare ScoreComparison) Selector {
	return rankScoreSelector{compare: compare}
}

func (s rankScoreSelector) Select(pop *Population, rng *rand.Rand) int {
	i, j := rng.Intn(pop.Len()), rng.Intn(pop.Len())
	if winner, ok := feasibilityWinner(pop, i, j); ok {
		return winner
	}
	ri, rj := pop.At(i).Rank(), pop.At(j).Rank()
	if ri != rj {
		if ri < rj {
			return i
		}
		return j
	}
	si, sj := pop.At(i).Score(), pop.At(j).Score()
	if s.compare == ScoreMaximize {
		if si >= sj {
			return i
		}
		return j
	}
	if si <= sj {
		return i
	}
	return j
}

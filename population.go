package moea

import "math"

// Population is a row-major collection of individuals. Genes[i] is the
// decision vector of individual i; Fitness[i] and Constraints[i], once
// evaluated, are its objective-space and constraint-space rows. Rank and
// Score are scratch attributes written by dominance sorting and survival
// operators.
//
// Fitness, Constraints, and Violation are nil until an Evaluator has run
// against the population.
type Population struct {
	Genes       [][]float64
	Fitness     [][]float64
	Constraints [][]float64
	Violation   []float64
	Rank        []int
	Score       []float64
}

// NewPopulation wraps genes in a Population with Rank and Score reset to
// their unset sentinels (-1 and NaN respectively).
func NewPopulation(genes [][]float64) *Population {
	n := len(genes)
	rank := make([]int, n)
	score := make([]float64, n)
	for i := range rank {
		rank[i] = -1
		score[i] = math.NaN()
	}
	return &Population{Genes: genes, Rank: rank, Score: score}
}

// Len returns the number of individuals.
func (p *Population) Len() int { return len(p.Genes) }

// NumVars returns the length of a decision vector, or 0 for an empty
// population.
func (p *Population) NumVars() int {
	if len(p.Genes) == 0 {
		return 0
	}
	return len(p.Genes[0])
}

// NumObjectives returns the length of an objective-space row, or 0 if the
// population has not been evaluated.
func (p *Population) NumObjectives() int {
	if len(p.Fitness) == 0 {
		return 0
	}
	return len(p.Fitness[0])
}

// At returns a zero-copy view of individual i.
func (p *Population) At(i int) Individual { return Individual{pop: p, idx: i} }

// Slice returns a new Population containing only the individuals named by
// indices, in that order. The result shares no backing arrays with p for
// the scratch attributes, but gene/fitness/constraint rows themselves are
// not copied.
func (p *Population) Slice(indices []int) *Population {
	out := &Population{
		Genes: make([][]float64, len(indices)),
		Rank:  make([]int, len(indices)),
		Score: make([]float64, len(indices)),
	}
	if p.Fitness != nil {
		out.Fitness = make([][]float64, len(indices))
	}
	if p.Constraints != nil {
		out.Constraints = make([][]float64, len(indices))
		out.Violation = make([]float64, len(indices))
	}
	for newIdx, oldIdx := range indices {
		out.Genes[newIdx] = p.Genes[oldIdx]
		out.Rank[newIdx] = p.Rank[oldIdx]
		out.Score[newIdx] = p.Score[oldIdx]
		if p.Fitness != nil {
			out.Fitness[newIdx] = p.Fitness[oldIdx]
		}
		if p.Constraints != nil {
			out.Constraints[newIdx] = p.Constraints[oldIdx]
			out.Violation[newIdx] = p.Violation[oldIdx]
		}
	}
	return out
}

// Concat returns a new Population holding p's individuals followed by
// other's. Both populations must be either both evaluated or both
// unevaluated.
func (p *Population) Concat(other *Population) *Population {
	genes := append(append([][]float64{}, p.Genes...), other.Genes...)
	rank := append(append([]int{}, p.Rank...), other.Rank...)
	score := append(append([]float64{}, p.Score...), other.Score...)
	out := &Population{Genes: genes, Rank: rank, Score: score}
	if p.Fitness != nil && other.Fitness != nil {
		out.Fitness = append(append([][]float64{}, p.Fitness...), other.Fitness...)
	}
	if p.Constraints != nil || other.Constraints != nil {
		out.Constraints = append(append([][]float64{}, p.Constraints...), other.Constraints...)
		out.Violation = append(append([]float64{}, p.Violation...), other.Violation...)
	}
	return out
}

// Best returns the subset of p whose Rank is 0 and which are feasible (a
// population with no constraints is feasible by construction). Rank must
// already have been assigned, typically by FastNonDominatedSort.
func (p *Population) Best() *Population {
	indices := make([]int, 0, p.Len())
	for i := 0; i < p.Len(); i++ {
		if p.Rank[i] == 0 && p.At(i).Feasible() {
			indices = append(indices, i)
		}
	}
	return p.Slice(indices)
}

package moea

// Individual is a zero-copy view into one row of a Population. It is cheap
// to pass by value and never outlives the Population it points into.
type Individual struct {
	pop *Population
	idx int
}

// Index returns the position of this individual within its Population.
func (ind Individual) Index() int { return ind.idx }

// Genes returns the decision vector.
func (ind Individual) Genes() []float64 { return ind.pop.Genes[ind.idx] }

// Fitness returns the objective-space row. Panics if the population has not
// been evaluated.
func (ind Individual) Fitness() []float64 { return ind.pop.Fitness[ind.idx] }

// Constraints returns the constraint-space row, or nil if the population
// carries no constraints.
func (ind Individual) Constraints() []float64 {
	if ind.pop.Constraints == nil {
		return nil
	}
	return ind.pop.Constraints[ind.idx]
}

// Violation returns the total constraint violation, 0 for an unconstrained
// population or a feasible individual.
func (ind Individual) Violation() float64 {
	if ind.pop.Violation == nil {
		return 0
	}
	return ind.pop.Violation[ind.idx]
}

// Feasible reports whether Violation is exactly zero.
func (ind Individual) Feasible() bool { return ind.Violation() == 0 }

// Rank returns the Pareto front rank assigned by FastNonDominatedSort, or
// -1 if unset.
func (ind Individual) Rank() int { return ind.pop.Rank[ind.idx] }

// SetRank overwrites the rank.
func (ind Individual) SetRank(rank int) { ind.pop.Rank[ind.idx] = rank }

// Score returns the survival-operator scratch score.
func (ind Individual) Score() float64 { return ind.pop.Score[ind.idx] }

// SetScore overwrites the score.
func (ind Individual) SetScore(score float64) { ind.pop.Score[ind.idx] = score }

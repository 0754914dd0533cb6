package moea

// Evaluator batches a population through the caller-supplied fitness and
// constraint closures and derives per-individual totals. Bounds, when set,
// are folded in as two extra inequality constraints per variable
// (low - x <= 0, x - high <= 0) so out-of-bounds offspring produced by an
// unclamped operator are still penalized rather than silently accepted.
type Evaluator struct {
	Fitness     FitnessFunc
	Constraints ConstraintFunc
	Bounds      []Bounds
}

// Evaluate fills in pop.Fitness, pop.Constraints, and pop.Violation.
func (e *Evaluator) Evaluate(pop *Population) error {
	fitness, err := e.Fitness(pop.Genes)
	if err != nil {
		return &EvaluationError{Context: "fitness", Err: err}
	}
	if len(fitness) != pop.Len() {
		return &ShapeError{Context: "fitness", Want: pop.Len(), Got: len(fitness)}
	}
	pop.Fitness = fitness

	var constraints [][]float64
	if e.Constraints != nil {
		constraints, err = e.Constraints(pop.Genes)
		if err != nil {
			return &EvaluationError{Context: "constraints", Err: err}
		}
		if len(constraints) != pop.Len() {
			return &ShapeError{Context: "constraints", Want: pop.Len(), Got: len(constraints)}
		}
	}
	constraints = appendBoundConstraints(constraints, pop.Genes, e.Bounds)
	pop.Constraints = constraints
	pop.Violation = totalViolations(constraints)
	return nil
}

func appendBoundConstraints(constraints [][]float64, genes [][]float64, bounds []Bounds) [][]float64 {
	if len(bounds) == 0 {
		return constraints
	}
	extra := make([][]float64, len(genes))
	for i, row := range genes {
		vals := make([]float64, 0, 2*len(bounds))
		for j, b := range bounds {
			if j >= len(row) {
				break
			}
			vals = append(vals, b.Low-row[j], row[j]-b.High)
		}
		extra[i] = vals
	}
	if constraints == nil {
		return extra
	}
	out := make([][]float64, len(genes))
	for i := range out {
		out[i] = append(append([]float64{}, constraints[i]...), extra[i]...)
	}
	return out
}

func totalViolations(constraints [][]float64) []float64 {
	if constraints == nil {
		return nil
	}
	out := make([]float64, len(constraints))
	for i, row := range constraints {
		total := 0.0
		for _, v := range row {
			if v > 0 {
				total += v
			}
		}
		out[i] = total
	}
	return out
}

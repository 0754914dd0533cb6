package benchmarks

// Knapsack{Profits,Qualities,Weights} and KnapsackCapacity define a
// 5-item 0/1 knapsack: maximize total profit and total quality subject to
// a capacity constraint, used by spec.md S1 ("binary knapsack / NSGA-II").
var (
	KnapsackProfits   = []float64{2, 3, 6, 1, 4}
	KnapsackQualities = []float64{5, 2, 1, 6, 4}
	KnapsackWeights   = []float64{2, 3, 6, 2, 3}
)

// KnapsackCapacity is the maximum total weight a selection may carry.
const KnapsackCapacity = 7.0

// KnapsackFitness returns (-profit, -quality) so minimization (the
// convention every survival operator assumes) recovers the maximization
// problem.
func KnapsackFitness(genes [][]float64) ([][]float64, error) {
	out := make([][]float64, len(genes))
	for i, x := range genes {
		profit, quality := 0.0, 0.0
		for j, bit := range x {
			if bit >= 0.5 {
				profit += KnapsackProfits[j]
				quality += KnapsackQualities[j]
			}
		}
		out[i] = []float64{-profit, -quality}
	}
	return out, nil
}

// KnapsackConstraints returns total-weight-minus-capacity: positive when
// a selection is over budget.
func KnapsackConstraints(genes [][]float64) ([][]float64, error) {
	out := make([][]float64, len(genes))
	for i, x := range genes {
		weight := 0.0
		for j, bit := range x {
			if bit >= 0.5 {
				weight += KnapsackWeights[j]
			}
		}
		out[i] = []float64{weight - KnapsackCapacity}
	}
	return out, nil
}

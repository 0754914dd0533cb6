package benchmarks

import moea "github.com/andresliszt/moo-go"

// TwoTargetsFitness is a two-objective sphere pair: minimize distance to
// (0, 0) and to (1, 0) respectively, giving a straight-line Pareto front
// on the segment between the two targets. Used by spec.md S5.
func TwoTargetsFitness(genes [][]float64) ([][]float64, error) {
	out := make([][]float64, len(genes))
	for i, x := range genes {
		f1 := x[0]*x[0] + x[1]*x[1]
		f2 := (x[0]-1)*(x[0]-1) + x[1]*x[1]
		out[i] = []float64{f1, f2}
	}
	return out, nil
}

// TwoTargetsBounds returns [0, 1] for both variables.
func TwoTargetsBounds() []moea.Bounds {
	return []moea.Bounds{{Low: 0, High: 1}, {Low: 0, High: 1}}
}

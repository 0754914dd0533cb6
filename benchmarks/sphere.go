package benchmarks

import moea "github.com/andresliszt/moo-go"

// SphereFitness is the single-objective sum-of-squares problem, used by
// spec.md S6 to exercise the driver's 1-D (single-objective) code path.
func SphereFitness(genes [][]float64) ([][]float64, error) {
	out := make([][]float64, len(genes))
	for i, x := range genes {
		sum := 0.0
		for _, v := range x {
			sum += v * v
		}
		out[i] = []float64{sum}
	}
	return out, nil
}

// SphereBounds returns [-5, 5] for every one of numVars variables.
func SphereBounds(numVars int) []moea.Bounds {
	bounds := make([]moea.Bounds, numVars)
	for i := range bounds {
		bounds[i] = moea.Bounds{Low: -5, High: 5}
	}
	return bounds
}

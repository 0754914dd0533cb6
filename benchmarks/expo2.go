package benchmarks

import (
	"math"

	moea "github.com/andresliszt/moo-go"
)

// EXPO2Fitness is a two-objective problem whose Pareto front follows
// f2 = exp(-5*f1) at g = 1, used by spec.md S4 to exercise IBEA-HV
// against a front shape neither ZDT problem produces.
func EXPO2Fitness(genes [][]float64) ([][]float64, error) {
	out := make([][]float64, len(genes))
	for i, x := range genes {
		f1 := x[0]
		g := zdtG(x)
		f2 := g * math.Exp(-5*f1/g)
		out[i] = []float64{f1, f2}
	}
	return out, nil
}

// EXPO2Bounds returns [0, 1] for every one of numVars variables.
func EXPO2Bounds(numVars int) []moea.Bounds {
	return unitBounds(numVars)
}

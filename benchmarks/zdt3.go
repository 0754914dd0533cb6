package benchmarks

import (
	"math"

	moea "github.com/andresliszt/moo-go"
)

// ZDT3Fitness is ZDT3: like ZDT1 but with a disconnected, oscillating
// second objective, supplementing the distillation's single-ZDT1
// benchmark set per spec.md S2's requirement for a non-convex,
// discontinuous front.
func ZDT3Fitness(genes [][]float64) ([][]float64, error) {
	out := make([][]float64, len(genes))
	for i, x := range genes {
		f1 := x[0]
		g := zdtG(x)
		ratio := f1 / g
		f2 := g * (1 - math.Sqrt(ratio) - ratio*math.Sin(10*math.Pi*f1))
		out[i] = []float64{f1, f2}
	}
	return out, nil
}

// ZDT3Bounds returns [0, 1] for every one of numVars variables.
func ZDT3Bounds(numVars int) []moea.Bounds {
	return unitBounds(numVars)
}

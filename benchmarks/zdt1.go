// Package benchmarks supplies the test problems spec.md §8's scenarios
// S1-S6 exercise. It is not part of the core: nothing under the module
// root imports it, and it exists purely so the package tests have
// something concrete to run the driver against. ZDT1 is adapted from the
// teacher's benchmarks.ZDT1 (pkg/multiobjective/benchmarks/zdt1.go).
package benchmarks

import (
	"math"

	moea "github.com/andresliszt/moo-go"
)

// ZDT1Fitness is the two-objective ZDT1 problem: f1(x) = x0,
// f2(x) = g(x)(1 - sqrt(f1/g)), g(x) = 1 + 9*mean(x[1:]).
func ZDT1Fitness(genes [][]float64) ([][]float64, error) {
	out := make([][]float64, len(genes))
	for i, x := range genes {
		f1 := x[0]
		g := zdtG(x)
		f2 := g * (1 - math.Sqrt(f1/g))
		out[i] = []float64{f1, f2}
	}
	return out, nil
}

// ZDT1Bounds returns [0, 1] for every one of numVars variables.
func ZDT1Bounds(numVars int) []moea.Bounds {
	return unitBounds(numVars)
}

// ZDT1TrueFront samples n points of the analytically known Pareto front.
func ZDT1TrueFront(n int) [][]float64 {
	pts := make([][]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)
		pts[i] = []float64{x, 1 - math.Sqrt(x)}
	}
	return pts
}

func zdtG(x []float64) float64 {
	g := 1.0
	if len(x) > 1 {
		sum := 0.0
		for _, v := range x[1:] {
			sum += v
		}
		g += 9.0 * sum / float64(len(x)-1)
	}
	return g
}

func unitBounds(numVars int) []moea.Bounds {
	bounds := make([]moea.Bounds, numVars)
	for i := range bounds {
		bounds[i] = moea.Bounds{Low: 0, High: 1}
	}
	return bounds
}

// Package operators supplies concrete Sampler/Crossover/Mutation
// implementations for real-valued and binary genomes, adapted from the
// teacher's framework.RealSolution and framework.BinarySolution
// (pkg/multiobjective/framework/framework.go). The driver never imports
// this package directly — callers wire one of these into a Builder, the
// same way the teacher's own benchmarks construct RealSolution instances
// with injected bounds.
package operators

import (
	"math"

	moea "github.com/andresliszt/moo-go"
	"golang.org/x/exp/rand"
)

// NewUniformRealSampler draws each gene uniformly within its bound,
// defaulting to [0, 1] for any variable beyond len(bounds).
func NewUniformRealSampler(bounds []moea.Bounds) moea.Sampler {
	return func(numVars, count int, rng *rand.Rand) [][]float64 {
		genes := make([][]float64, count)
		for i := range genes {
			row := make([]float64, numVars)
			for j := range row {
				lo, hi := 0.0, 1.0
				if j < len(bounds) {
					lo, hi = bounds[j].Low, bounds[j].High
				}
				row[j] = lo + rng.Float64()*(hi-lo)
			}
			genes[i] = row
		}
		return genes
	}
}

// NewSBXCrossover implements simulated binary crossover, adapted from
// RealSolution.Crossover, producing two children per parent pair and
// clamping to bounds.
func NewSBXCrossover(bounds []moea.Bounds, eta float64) moea.Crossover {
	return func(parentsA, parentsB [][]float64, rng *rand.Rand) [][]float64 {
		offspring := make([][]float64, 0, 2*len(parentsA))
		for p := range parentsA {
			a, b := parentsA[p], parentsB[p]
			child1 := make([]float64, len(a))
			child2 := make([]float64, len(a))
			for i := range a {
				var beta float64
				if rng.Float64() <= 0.5 {
					beta = math.Pow(2*rng.Float64(), 1.0/(eta+1))
				} else {
					beta = math.Pow(1.0/(2*(1.0-rng.Float64())), 1.0/(eta+1))
				}
				c1 := 0.5 * ((1+beta)*a[i] + (1-beta)*b[i])
				c2 := 0.5 * ((1-beta)*a[i] + (1+beta)*b[i])
				lo, hi := boundsFor(bounds, i)
				child1[i] = clamp(c1, lo, hi)
				child2[i] = clamp(c2, lo, hi)
			}
			offspring = append(offspring, child1, child2)
		}
		return offspring
	}
}

// NewPolynomialMutation implements polynomial mutation, adapted from
// RealSolution.Mutate, applied independently to each gene with
// probability rate.
func NewPolynomialMutation(bounds []moea.Bounds, eta float64) moea.Mutation {
	return func(genes [][]float64, rate float64, rng *rand.Rand) [][]float64 {
		out := make([][]float64, len(genes))
		for i, row := range genes {
			mutated := append([]float64{}, row...)
			for j := range mutated {
				if rng.Float64() >= rate {
					continue
				}
				var delta float64
				if rng.Float64() <= 0.5 {
					delta = math.Pow(2*rng.Float64(), 1.0/(eta+1)) - 1
				} else {
					delta = 1 - math.Pow(2*(1-rng.Float64()), 1.0/(eta+1))
				}
				lo, hi := boundsFor(bounds, j)
				span := hi - lo
				if math.IsInf(span, 0) {
					span = 1
				}
				mutated[j] = clamp(mutated[j]+delta*span, lo, hi)
			}
			out[i] = mutated
		}
		return out
	}
}

func boundsFor(bounds []moea.Bounds, i int) (lo, hi float64) {
	if i < len(bounds) {
		return bounds[i].Low, bounds[i].High
	}
	return math.Inf(-1), math.Inf(1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package operators

import (
	moea "github.com/andresliszt/moo-go"
	"golang.org/x/exp/rand"
)

// NewUniformBinarySampler draws each gene as 0 or 1 with equal
// probability, adapted from BinarySolution's bit-string representation.
func NewUniformBinarySampler() moea.Sampler {
	return func(numVars, count int, rng *rand.Rand) [][]float64 {
		genes := make([][]float64, count)
		for i := range genes {
			row := make([]float64, numVars)
			for j := range row {
				if rng.Float64() < 0.5 {
					row[j] = 1
				}
			}
			genes[i] = row
		}
		return genes
	}
}

// NewOnePointCrossover splits each parent pair at a single random point
// and swaps the tails, adapted from BinarySolution.Crossover.
func NewOnePointCrossover() moea.Crossover {
	return func(parentsA, parentsB [][]float64, rng *rand.Rand) [][]float64 {
		offspring := make([][]float64, 0, 2*len(parentsA))
		for p := range parentsA {
			a, b := parentsA[p], parentsB[p]
			child1 := append([]float64{}, a...)
			child2 := append([]float64{}, b...)
			point := rng.Intn(len(a))
			for i := point; i < len(a); i++ {
				child1[i], child2[i] = child2[i], child1[i]
			}
			offspring = append(offspring, child1, child2)
		}
		return offspring
	}
}

// NewBitFlipMutation flips each gene independently with probability rate,
// adapted from BinarySolution.Mutate.
func NewBitFlipMutation() moea.Mutation {
	return func(genes [][]float64, rate float64, rng *rand.Rand) [][]float64 {
		out := make([][]float64, len(genes))
		for i, row := range genes {
			mutated := append([]float64{}, row...)
			for j := range mutated {
				if rng.Float64() < rate {
					if mutated[j] == 0 {
						mutated[j] = 1
					} else {
						mutated[j] = 0
					}
				}
			}
			out[i] = mutated
		}
		return out
	}
}

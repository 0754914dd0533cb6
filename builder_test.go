package moea

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

func constantSampler(numVars, count int, rng *rand.Rand) [][]float64 {
	genes := make([][]float64, count)
	for i := range genes {
		genes[i] = make([]float64, numVars)
	}
	return genes
}

func identityCrossover(parentsA, parentsB [][]float64, rng *rand.Rand) [][]float64 {
	out := make([][]float64, 0, 2*len(parentsA))
	for i := range parentsA {
		out = append(out, append([]float64{}, parentsA[i]...), append([]float64{}, parentsB[i]...))
	}
	return out
}

func noopMutation(genes [][]float64, rate float64, rng *rand.Rand) [][]float64 { return genes }

func constantFitness(genes [][]float64) ([][]float64, error) {
	out := make([][]float64, len(genes))
	for i := range genes {
		out[i] = []float64{0}
	}
	return out, nil
}

func TestBuilderRejectsMissingRequiredFields(t *testing.T) {
	_, err := NewBuilder().Build()
	if err == nil {
		t.Fatalf("expected an error from an empty builder")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a *ConfigurationError, got %T: %v", err, err)
	}
}

func TestBuilderRejectsOutOfRangeRates(t *testing.T) {
	_, err := NewBuilder().
		WithNumVars(2).
		WithPopulationSize(10).
		WithNumOffsprings(10).
		WithNumIterations(5).
		WithCrossoverRate(1.5).
		WithSampler(constantSampler).
		WithSelection(NewRandomSelector()).
		WithSurvival(stubSurvivor{}).
		WithCrossover(identityCrossover).
		WithMutation(noopMutation).
		WithFitness(constantFitness).
		Build()
	if err == nil {
		t.Fatalf("expected an error for a crossover rate outside [0, 1]")
	}
}

type stubSurvivor struct{}

func (stubSurvivor) Survive(pop *Population, mu int, rng *rand.Rand) (*Population, error) {
	if mu > pop.Len() {
		mu = pop.Len()
	}
	indices := make([]int, mu)
	for i := range indices {
		indices[i] = i
	}
	return pop.Slice(indices), nil
}

func TestBuilderBuildsWithAllRequiredFieldsSet(t *testing.T) {
	driver, err := NewBuilder().
		WithNumVars(2).
		WithPopulationSize(6).
		WithNumOffsprings(6).
		WithNumIterations(3).
		WithSeed(42).
		WithSampler(constantSampler).
		WithSelection(NewRandomSelector()).
		WithSurvival(stubSurvivor{}).
		WithCrossover(identityCrossover).
		WithMutation(noopMutation).
		WithFitness(constantFitness).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	final, best, err := driver.Run()
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if final.Len() != 6 {
		t.Fatalf("expected final population of size 6, got %d", final.Len())
	}
	if best.Len() == 0 {
		t.Fatalf("expected a non-empty best subset")
	}
}

package operators

import (
	"testing"

	moea "github.com/andresliszt/moo-go"
	"golang.org/x/exp/rand"
)

func TestUniformRealSamplerRespectsBounds(t *testing.T) {
	bounds := []moea.Bounds{{Low: -1, High: 1}, {Low: 0, High: 10}}
	sampler := NewUniformRealSampler(bounds)
	rng := rand.New(rand.NewSource(1))
	genes := sampler(2, 50, rng)
	for _, row := range genes {
		if row[0] < -1 || row[0] > 1 {
			t.Fatalf("gene 0 out of bounds: %v", row[0])
		}
		if row[1] < 0 || row[1] > 10 {
			t.Fatalf("gene 1 out of bounds: %v", row[1])
		}
	}
}

func TestSBXCrossoverClampsToBounds(t *testing.T) {
	bounds := []moea.Bounds{{Low: 0, High: 1}}
	crossover := NewSBXCrossover(bounds, 15)
	rng := rand.New(rand.NewSource(2))
	children := crossover([][]float64{{0.0}}, [][]float64{{1.0}}, rng)
	if len(children) != 2 {
		t.Fatalf("expected 2 children from 1 pair, got %d", len(children))
	}
	for _, c := range children {
		if c[0] < 0 || c[0] > 1 {
			t.Fatalf("child gene escaped bounds: %v", c[0])
		}
	}
}

func TestPolynomialMutationRespectsRateZero(t *testing.T) {
	bounds := []moea.Bounds{{Low: 0, High: 1}}
	mutation := NewPolynomialMutation(bounds, 20)
	rng := rand.New(rand.NewSource(3))
	genes := [][]float64{{0.5}}
	mutated := mutation(genes, 0, rng)
	if mutated[0][0] != 0.5 {
		t.Fatalf("expected no mutation at rate 0, got %v", mutated[0][0])
	}
}

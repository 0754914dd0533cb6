package survival

import (
	"testing"

	moea "github.com/andresliszt/moo-go"
	"golang.org/x/exp/rand"
)

func evaluatedPopulation(fitness [][]float64) *moea.Population {
	pop := moea.NewPopulation(make([][]float64, len(fitness)))
	pop.Fitness = fitness
	return pop
}

func TestNSGA2SurviveKeepsFullFrontsAndFillsBySpacing(t *testing.T) {
	pop := evaluatedPopulation([][]float64{
		{0, 3}, {1, 1}, {3, 0}, // front 0
		{0.5, 2.5}, {2.5, 0.5}, // front 1
	})
	rng := rand.New(rand.NewSource(1))
	survivors, err := NSGA2{}.Survive(pop, 4, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if survivors.Len() != 4 {
		t.Fatalf("expected 4 survivors, got %d", survivors.Len())
	}
	for i := 0; i < 3; i++ {
		found := false
		for j := 0; j < survivors.Len(); j++ {
			if survivors.Fitness[j][0] == pop.Fitness[i][0] && survivors.Fitness[j][1] == pop.Fitness[i][1] {
				found = true
			}
		}
		if !found {
			t.Errorf("expected front-0 member %v to survive", pop.Fitness[i])
		}
	}
}

func TestNSGA2SurviveReturnsWholePopulationWhenMuExceedsSize(t *testing.T) {
	pop := evaluatedPopulation([][]float64{{0, 1}, {1, 0}})
	rng := rand.New(rand.NewSource(1))
	survivors, err := NSGA2{}.Survive(pop, 2, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if survivors.Len() != 2 {
		t.Fatalf("expected 2 survivors, got %d", survivors.Len())
	}
}

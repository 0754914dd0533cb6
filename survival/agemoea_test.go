package survival

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestAGEMOEASurviveReturnsRequestedSize(t *testing.T) {
	pop := evaluatedPopulation([][]float64{
		{0, 3}, {1, 1}, {3, 0}, {0.5, 2.5}, {2.5, 0.5}, {2, 2}, {0.2, 2.7},
	})
	rng := rand.New(rand.NewSource(9))
	survivors, err := AGEMOEA{}.Survive(pop, 4, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if survivors.Len() != 4 {
		t.Fatalf("expected 4 survivors, got %d", survivors.Len())
	}
}

func TestAGEMOEASurviveHandlesSingleFrontPoint(t *testing.T) {
	pop := evaluatedPopulation([][]float64{{0, 0}})
	rng := rand.New(rand.NewSource(9))
	survivors, err := AGEMOEA{}.Survive(pop, 1, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if survivors.Len() != 1 {
		t.Fatalf("expected 1 survivor, got %d", survivors.Len())
	}
}

package survival

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestNSGA3SurviveReturnsRequestedSize(t *testing.T) {
	s := NewNSGA3(2, 6)
	pop := evaluatedPopulation([][]float64{
		{0, 1}, {0.2, 0.8}, {0.4, 0.6}, {0.6, 0.4}, {0.8, 0.2}, {1, 0},
		{0.1, 0.95}, {0.5, 0.5}, {0.9, 0.1},
	})
	rng := rand.New(rand.NewSource(3))
	survivors, err := s.Survive(pop, 6, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if survivors.Len() != 6 {
		t.Fatalf("expected 6 survivors, got %d", survivors.Len())
	}
}

func TestNSGA3RequiresReferencePoints(t *testing.T) {
	s := &NSGA3{}
	pop := evaluatedPopulation([][]float64{{0, 1}, {1, 0}})
	rng := rand.New(rand.NewSource(1))
	if _, err := s.Survive(pop, 1, rng); err == nil {
		t.Fatalf("expected a ConfigurationError when no reference points are set")
	}
}

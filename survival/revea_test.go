package survival

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestREVEASurviveReturnsRequestedSizeAndRefreshes(t *testing.T) {
	s := NewREVEA(2, 8, 2.0, 2, 10)
	rng := rand.New(rand.NewSource(5))
	pop := evaluatedPopulation([][]float64{
		{0, 1}, {0.2, 0.8}, {0.4, 0.6}, {0.6, 0.4}, {0.8, 0.2}, {1, 0}, {0.5, 0.5}, {0.3, 0.3},
	})
	before := len(s.vectors)
	for i := 0; i < 3; i++ {
		survivors, err := s.Survive(pop, 6, rng)
		if err != nil {
			t.Fatalf("unexpected error on generation %d: %v", i, err)
		}
		if survivors.Len() != 6 {
			t.Fatalf("expected 6 survivors, got %d", survivors.Len())
		}
	}
	if len(s.vectors) != before {
		t.Fatalf("refresh must preserve the number of reference vectors")
	}
}

package numeric

import (
	"math"
	"testing"
)

func TestCrowdingDistanceBoundariesAreInfinite(t *testing.T) {
	dist := CrowdingDistance([][]float64{{0}, {0.5}, {1}})
	if !math.IsInf(dist[0], 1) || !math.IsInf(dist[2], 1) {
		t.Fatalf("expected boundary points to have infinite crowding distance, got %v", dist)
	}
	if dist[1] != 1.0 {
		t.Fatalf("expected middle point's crowding distance to be 1.0, got %v", dist[1])
	}
}

func TestCrowdingDistanceZeroRangeObjectiveContributesNothing(t *testing.T) {
	dist := CrowdingDistance([][]float64{{0, 5}, {1, 5}, {2, 5}})
	if dist[1] != 1.0 {
		t.Fatalf("expected the constant second objective to add nothing, got %v", dist[1])
	}
}

func TestCrowdingDistanceSmallFrontsAreAllInfinite(t *testing.T) {
	dist := CrowdingDistance([][]float64{{0, 0}, {1, 1}})
	for i, d := range dist {
		if !math.IsInf(d, 1) {
			t.Errorf("front of size 2: expected index %d to be +Inf, got %v", i, d)
		}
	}
}

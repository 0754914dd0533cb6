package numeric

import "testing"

func TestHypervolume2DSinglePoint(t *testing.T) {
	ref := []float64{10, 10}
	point := []float64{4, 6}
	hv := Hypervolume2D([][]float64{point}, ref)
	want := (ref[0] - point[0]) * (ref[1] - point[1])
	if hv != want {
		t.Fatalf("expected hv %v, got %v", want, hv)
	}
}

func TestHypervolume2DDominatedPointDoesNotIncreaseIt(t *testing.T) {
	ref := []float64{10, 10}
	single := Hypervolume2D([][]float64{{4, 6}}, ref)
	withDominated := Hypervolume2D([][]float64{{4, 6}, {8, 9}}, ref)
	if withDominated != single {
		t.Fatalf("adding a dominated point changed the hypervolume: %v vs %v", withDominated, single)
	}
}

func TestHypervolume2DPointOutsideReferenceContributesNothing(t *testing.T) {
	ref := []float64{10, 10}
	hv := Hypervolume2D([][]float64{{12, 1}}, ref)
	if hv != 0 {
		t.Fatalf("expected 0 for a point not dominating the reference, got %v", hv)
	}
}

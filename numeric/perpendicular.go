package numeric

import "gonum.org/v1/gonum/mat"

// PerpendicularDistance returns the distance from point to the line through
// the origin in direction ref, as spec.md §4.3.2 (NSGA-III association)
// requires: ||point - ((point.ref)/(ref.ref)) ref||. It is invariant to
// positive scaling of ref.
func PerpendicularDistance(point, ref []float64) float64 {
	p := mat.NewVecDense(len(point), point)
	r := mat.NewVecDense(len(ref), ref)
	refNormSq := mat.Dot(r, r)
	if refNormSq == 0 {
		return mat.Norm(p, 2)
	}
	scale := mat.Dot(p, r) / refNormSq
	proj := mat.NewVecDense(len(ref), nil)
	proj.ScaleVec(scale, r)
	diff := mat.NewVecDense(len(point), nil)
	diff.SubVec(p, proj)
	return mat.Norm(diff, 2)
}

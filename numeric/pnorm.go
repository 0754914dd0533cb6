package numeric

import "math"

// PNorm returns the p-norm of v.
func PNorm(v []float64, p float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += math.Pow(math.Abs(x), p)
	}
	return math.Pow(sum, 1/p)
}

// PNormDistance returns the p-norm of a-b.
func PNormDistance(a, b []float64, p float64) float64 {
	diff := make([]float64, len(a))
	for i := range a {
		diff[i] = a[i] - b[i]
	}
	return PNorm(diff, p)
}

// FitCurvatureP searches for the p minimizing how far every row in points
// (already translated so the ideal point sits at the origin) falls from
// the surface sum(|x_i|^p) = 1, via ternary search over p in [0.1, 20].
// AGE-MOEA (spec.md §4.3.4) uses the result to build a p-norm proximity
// measure that adapts to the curvature of the current Pareto front.
func FitCurvatureP(points [][]float64) float64 {
	objective := func(p float64) float64 {
		total := 0.0
		for _, pt := range points {
			s := 0.0
			for _, v := range pt {
				s += math.Pow(math.Abs(v), p)
			}
			total += math.Abs(s - 1)
		}
		return total
	}
	lo, hi := 0.1, 20.0
	for iter := 0; iter < 60; iter++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if objective(m1) < objective(m2) {
			hi = m2
		} else {
			lo = m1
		}
	}
	return (lo + hi) / 2
}

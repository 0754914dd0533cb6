package numeric

// DasDennisReferencePoints enumerates every reference point on the
// m-dimensional simplex with h divisions: every non-negative integer
// composition of h into m parts, each scaled by 1/h. Recursion fixes the
// composition's leading coordinates first and sweeps the remainder
// ascending, so the output order is deterministic across calls for the
// same (h, m) — spec.md §4.3.2's systematic reference-point construction.
func DasDennisReferencePoints(h, m int) [][]float64 {
	if h <= 0 || m <= 0 {
		return nil
	}
	var points [][]float64
	composition := make([]int, m)
	var recurse func(level, remaining int)
	recurse = func(level, remaining int) {
		if level == m-1 {
			composition[level] = remaining
			point := make([]float64, m)
			for i, c := range composition {
				point[i] = float64(c) / float64(h)
			}
			points = append(points, point)
			return
		}
		for v := 0; v <= remaining; v++ {
			composition[level] = v
			recurse(level+1, remaining-v)
		}
	}
	recurse(0, h)
	return points
}

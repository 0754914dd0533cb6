package numeric

import "math"

// UnitVector rescales v to unit L2 norm. A zero vector is returned
// unchanged.
func UnitVector(v []float64) []float64 {
	norm := 0.0
	for _, x := range v {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	out := make([]float64, len(v))
	if norm == 0 {
		copy(out, v)
		return out
	}
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}

// Angle returns the angle in radians between a and b.
func Angle(a, b []float64) float64 {
	ua, ub := UnitVector(a), UnitVector(b)
	dot := 0.0
	for i := range ua {
		dot += ua[i] * ub[i]
	}
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(dot)
}

// AssociateByAngle assigns each row in points to the reference vector in
// refs with the smallest angle to it, as REVEA's association step
// (spec.md §4.3.6) requires. assoc[i] names the winning reference index;
// angle[i] is the winning angle.
func AssociateByAngle(points, refs [][]float64) (assoc []int, angle []float64) {
	assoc = make([]int, len(points))
	angle = make([]float64, len(points))
	for i, p := range points {
		best, bestAngle := 0, math.Inf(1)
		for j, r := range refs {
			a := Angle(p, r)
			if a < bestAngle {
				bestAngle, best = a, j
			}
		}
		assoc[i] = best
		angle[i] = bestAngle
	}
	return assoc, angle
}

// MinimumPairwiseAngle returns, for every reference vector, the smallest
// angle to any other reference vector — REVEA's gamma_j.
func MinimumPairwiseAngle(refs [][]float64) []float64 {
	gamma := make([]float64, len(refs))
	for i := range refs {
		best := math.Inf(1)
		for j := range refs {
			if i == j {
				continue
			}
			if a := Angle(refs[i], refs[j]); a < best {
				best = a
			}
		}
		gamma[i] = best
	}
	return gamma
}

package numeric

import "math"

// IdealPoint returns the componentwise minimum of rows.
func IdealPoint(rows [][]float64) []float64 {
	m := len(rows[0])
	ideal := make([]float64, m)
	for j := range ideal {
		ideal[j] = math.Inf(1)
	}
	for _, r := range rows {
		for j, v := range r {
			if v < ideal[j] {
				ideal[j] = v
			}
		}
	}
	return ideal
}

// NadirPoint returns the componentwise maximum of rows.
func NadirPoint(rows [][]float64) []float64 {
	m := len(rows[0])
	nadir := make([]float64, m)
	for j := range nadir {
		nadir[j] = math.Inf(-1)
	}
	for _, r := range rows {
		for j, v := range r {
			if v > nadir[j] {
				nadir[j] = v
			}
		}
	}
	return nadir
}

// Normalize rescales every row to [0, 1] per objective using ideal and
// nadir as the per-objective min/max; an objective with zero range maps to
// 0 for every row rather than dividing by zero.
func Normalize(rows [][]float64, ideal, nadir []float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = make([]float64, len(r))
		for j, v := range r {
			span := nadir[j] - ideal[j]
			if span == 0 {
				continue
			}
			out[i][j] = (v - ideal[j]) / span
		}
	}
	return out
}

// Translate subtracts origin from every row, leaving rows unmodified.
func Translate(rows [][]float64, origin []float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = make([]float64, len(r))
		for j, v := range r {
			out[i][j] = v - origin[j]
		}
	}
	return out
}

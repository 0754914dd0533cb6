package numeric

import (
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Hypervolume2D computes the exact hypervolume dominated by points (under
// minimization) with respect to ref, via the classic sort-by-first-
// objective sweep (grounded in the other_examples Mayfly implementation's
// calculateHypervolume). Points not dominating ref contribute nothing.
func Hypervolume2D(points [][]float64, ref []float64) float64 {
	filtered := make([][]float64, 0, len(points))
	for _, p := range points {
		if p[0] < ref[0] && p[1] < ref[1] {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return 0
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i][0] < filtered[j][0] })

	hv := 0.0
	prevY := ref[1]
	for _, p := range filtered {
		width := ref[0] - p[0]
		height := prevY - p[1]
		if width > 0 && height > 0 {
			hv += width * height
		}
		if p[1] < prevY {
			prevY = p[1]
		}
	}
	return hv
}

// HypervolumeMonteCarlo estimates the hypervolume dominated by points
// (under minimization) within the box [ideal, ref], for objective counts
// where the exact sweep no longer applies. Sampling uses gonum's
// stat/distuv.Uniform seeded from the caller's rng, so results are
// reproducible under the driver's single-RNG model (spec.md §5).
func HypervolumeMonteCarlo(points [][]float64, ref, ideal []float64, samples int, rng *rand.Rand) float64 {
	m := len(ref)
	boxVolume := 1.0
	for i := 0; i < m; i++ {
		boxVolume *= ref[i] - ideal[i]
	}
	if boxVolume <= 0 {
		return 0
	}

	unit := distuv.Uniform{Min: 0, Max: 1, Src: rng}
	dominatedCount := 0
	sample := make([]float64, m)
	for s := 0; s < samples; s++ {
		for i := 0; i < m; i++ {
			sample[i] = ideal[i] + unit.Rand()*(ref[i]-ideal[i])
		}
		if isDominatedByAny(sample, points) {
			dominatedCount++
		}
	}
	return boxVolume * float64(dominatedCount) / float64(samples)
}

func isDominatedByAny(sample []float64, points [][]float64) bool {
	for _, p := range points {
		allLE := true
		for i := range sample {
			if p[i] > sample[i] {
				allLE = false
				break
			}
		}
		if allLE {
			return true
		}
	}
	return false
}

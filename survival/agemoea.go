package survival

import (
	"math"

	moea "github.com/andresliszt/moo-go"
	"github.com/andresliszt/moo-go/numeric"
	"golang.org/x/exp/rand"
)

// AGEMOEA survives full fronts, scoring every individual by a p-norm
// proximity/diversity trade-off: p is fit once per generation to the
// curvature of the first front (spec.md §4.3.4), then every front's
// members are scored as diversity (p-norm distance to nearest neighbor)
// minus proximity (p-norm distance to the ideal point), higher is better.
type AGEMOEA struct{}

// Survive implements moea.Survivor.
func (AGEMOEA) Survive(pop *moea.Population, mu int, rng *rand.Rand) (*moea.Population, error) {
	fronts := moea.FastNonDominatedSort(pop)

	firstFront := fitnessRows(pop, fronts[0].Indices)
	ideal := numeric.IdealPoint(firstFront)
	p := numeric.FitCurvatureP(numeric.Translate(firstFront, ideal))
	if p <= 0 || math.IsNaN(p) {
		p = 1
	}

	for _, f := range fronts {
		rows := fitnessRows(pop, f.Indices)
		translated := numeric.Translate(rows, ideal)
		score := make([]float64, len(translated))
		for i, row := range translated {
			proximity := numeric.PNorm(row, p)
			diversity := nearestPNormNeighbor(translated, i, p)
			score[i] = diversity - proximity
		}
		applyScores(pop, f.Indices, score)
	}

	selected, splitIdx := takeFullFronts(fronts, mu)
	if splitIdx == -1 || len(selected) == mu {
		return pop.Slice(selected), nil
	}
	front := fronts[splitIdx].Indices
	score := make([]float64, len(front))
	for i, idx := range front {
		score[i] = pop.Score[idx]
	}
	picked := pickTopByScoreDesc(front, score, mu-len(selected))
	selected = append(selected, picked...)
	return pop.Slice(selected), nil
}

func nearestPNormNeighbor(rows [][]float64, i int, p float64) float64 {
	best := math.Inf(1)
	for j := range rows {
		if i == j {
			continue
		}
		if d := numeric.PNormDistance(rows[i], rows[j], p); d < best {
			best = d
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

// Package survival implements the seven survival (environmental selection)
// operators spec.md §4.3 names, each reducing a combined parent+offspring
// population down to the next generation. Every operator is grounded in
// the teacher's algorithms/nsga2.go non-dominated-sort-then-crowding
// shape, generalized to the other six algorithms' own secondary criteria.
package survival

import (
	"sort"

	moea "github.com/andresliszt/moo-go"
)

func fitnessRows(pop *moea.Population, indices []int) [][]float64 {
	rows := make([][]float64, len(indices))
	for i, idx := range indices {
		rows[i] = pop.Fitness[idx]
	}
	return rows
}

func allFitnessRows(pop *moea.Population) [][]float64 {
	return pop.Fitness
}

func applyScores(pop *moea.Population, indices []int, scores []float64) {
	for i, idx := range indices {
		pop.Score[idx] = scores[i]
	}
}

// pickTopByScoreDesc returns the k indices (from idx) with the highest
// score, breaking ties by the smaller original population index so
// survivor membership is deterministic given a fixed RNG stream.
func pickTopByScoreDesc(idx []int, score []float64, k int) []int {
	type pair struct {
		id    int
		score float64
	}
	pairs := make([]pair, len(idx))
	for i, id := range idx {
		pairs[i] = pair{id: id, score: score[i]}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		if pairs[a].score != pairs[b].score {
			return pairs[a].score > pairs[b].score
		}
		return pairs[a].id < pairs[b].id
	})
	if k > len(pairs) {
		k = len(pairs)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = pairs[i].id
	}
	return out
}

// pickTopByScoreAsc is pickTopByScoreDesc with the comparison inverted, for
// minimize-style scores (R-NSGA-II proximity, REVEA APD).
func pickTopByScoreAsc(idx []int, score []float64, k int) []int {
	negated := make([]float64, len(score))
	for i, s := range score {
		negated[i] = -s
	}
	return pickTopByScoreDesc(idx, negated, k)
}

func takeFullFronts(fronts []moea.Front, mu int) (selected []int, splitFront int) {
	for i, f := range fronts {
		if len(selected)+f.Len() > mu {
			return selected, i
		}
		selected = append(selected, f.Indices...)
	}
	return selected, -1
}

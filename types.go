// Package moea implements the constrained multi-objective evolutionary
// optimization core: dominance sorting, selection, survival, and the
// generation-by-generation driver that ties them together.
package moea

import (
	"time"

	"golang.org/x/exp/rand"
)

// Bounds constrains a single decision variable to [Low, High].
type Bounds struct {
	Low  float64
	High float64
}

// FitnessFunc evaluates every row of genes and returns one objective-space
// row per individual, in the same order. A shorter or longer result than
// len(genes) is a ShapeError.
type FitnessFunc func(genes [][]float64) ([][]float64, error)

// ConstraintFunc evaluates every row of genes and returns one inequality
// constraint row per individual. A positive entry means the constraint is
// violated by that amount; a non-positive entry means it is satisfied.
type ConstraintFunc func(genes [][]float64) ([][]float64, error)

// Sampler draws an initial population of count gene rows, each of length
// numVars.
type Sampler func(numVars, count int, rng *rand.Rand) [][]float64

// Crossover recombines paired parent rows into offspring rows. Parents are
// aligned by index: parentsA[i] is paired with parentsB[i]. Implementations
// are free to return any number of offspring rows, including more than one
// per pair.
type Crossover func(parentsA, parentsB [][]float64, rng *rand.Rand) [][]float64

// Mutation perturbs gene rows in place conceptually, returning the mutated
// rows. rate is the probability, applied by the implementation however it
// sees fit (per-individual, per-gene, ...), that a given row or gene is
// disturbed.
type Mutation func(genes [][]float64, rate float64, rng *rand.Rand) [][]float64

// DuplicateCleaner removes genes from pop that are duplicates of each other
// or of a row already present in reference. reference may be nil.
type DuplicateCleaner interface {
	Clean(pop, reference *Population) *Population
}

// Selector picks the index of a winning individual from pop, usually via a
// binary tournament. It must not mutate pop.
type Selector interface {
	Select(pop *Population, rng *rand.Rand) int
}

// Survivor reduces a combined parent+offspring population down to mu
// individuals that carry over into the next generation. Implementations may
// set Population.Rank and Population.Score as a side effect; the driver
// re-derives Rank from scratch afterwards so a Survivor's own bookkeeping of
// it is only ever used internally.
type Survivor interface {
	Survive(pop *Population, mu int, rng *rand.Rand) (*Population, error)
}

// Emitter delivers a non-fatal diagnostic. level follows klog verbosity
// conventions: 0 is always shown, higher numbers are progressively more
// verbose.
type Emitter func(level int, msg string, keysAndValues ...interface{})

// Observer receives per-generation instrumentation. It must return quickly;
// the driver calls it synchronously on the hot path.
type Observer interface {
	Generation(generation, populationSize, frontCount int, elapsed time.Duration)
}

type noopObserver struct{}

func (noopObserver) Generation(int, int, int, time.Duration) {}

// ScoreComparison selects whether a rank-and-score Selector treats higher or
// lower Population.Score as preferable.
type ScoreComparison int

const (
	// ScoreMaximize prefers higher Score values (NSGA-II crowding distance,
	// AGE-MOEA survival score, REVEA's negated angle-penalized distance).
	ScoreMaximize ScoreComparison = iota
	// ScoreMinimize prefers lower Score values (R-NSGA-II reference-point
	// proximity).
	ScoreMinimize
)

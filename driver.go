package moea

import (
	"time"

	"golang.org/x/exp/rand"
)

// Driver runs the generation loop spec.md §4.5 describes: sample, evaluate,
// then repeatedly select parents, recombine, mutate, evaluate offspring,
// clean duplicates, and let a Survivor cut the combined pool back down to
// PopulationSize. Construct one via Builder rather than directly, so the
// required-field and range checks in Builder.Build always run first.
type Driver struct {
	NumVars        int
	PopulationSize int
	NumOffsprings  int
	NumIterations  int
	CrossoverRate  float64
	MutationRate   float64
	KeepInfeasible bool

	Sampler   Sampler
	Selection Selector
	Survival  Survivor
	Crossover Crossover
	Mutation  Mutation
	Cleaner   DuplicateCleaner
	Evaluator *Evaluator

	RNG      *rand.Rand
	Emit     Emitter
	Observer Observer
}

// Run executes the full evolutionary loop and returns the final population
// alongside its best (rank-0, feasible) subset.
func (d *Driver) Run() (final *Population, best *Population, err error) {
	genes := d.Sampler(d.NumVars, d.PopulationSize, d.RNG)
	pop := NewPopulation(genes)
	if err := d.Evaluator.Evaluate(pop); err != nil {
		return nil, nil, err
	}

	if d.Cleaner != nil {
		pop = d.Cleaner.Clean(pop, nil)
	}
	if !d.KeepInfeasible && pop.Constraints != nil {
		pop = d.filterFeasible(pop)
	}
	if pop.Len() > 0 && pop.Len() < d.PopulationSize {
		d.emit(WarnEmptyPopulation, "initial population smaller than population size, padding by cyclic resampling",
			"got", pop.Len(), "want", d.PopulationSize)
	}
	pop = d.padTo(pop, d.PopulationSize)
	if pop.Len() == 0 {
		d.emit(WarnEmptyPopulation, "initial population is empty after feasibility filtering")
		return pop, pop, nil
	}

	pop, err = d.Survival.Survive(pop, min(pop.Len(), d.PopulationSize), d.RNG)
	if err != nil {
		return nil, nil, err
	}
	FastNonDominatedSort(pop)

	for generation := 1; generation <= d.NumIterations; generation++ {
		start := time.Now()
		pop, err = d.step(pop)
		if err != nil {
			return nil, nil, err
		}
		if pop.Len() == 0 {
			d.emit(WarnEmptyPopulation, "population collapsed to zero", "generation", generation)
			break
		}
		d.Observer.Generation(generation, pop.Len(), FrontCount(pop), time.Since(start))
	}

	return pop, pop.Best(), nil
}

// step advances pop by exactly one generation.
func (d *Driver) step(pop *Population) (*Population, error) {
	numPairs := (d.NumOffsprings + 1) / 2
	offspringGenes := make([][]float64, 0, 2*numPairs)
	for i := 0; i < numPairs; i++ {
		ia := d.Selection.Select(pop, d.RNG)
		ib := d.Selection.Select(pop, d.RNG)
		parentA, parentB := pop.Genes[ia], pop.Genes[ib]
		if d.RNG.Float64() < d.CrossoverRate {
			children := d.Crossover([][]float64{parentA}, [][]float64{parentB}, d.RNG)
			offspringGenes = append(offspringGenes, children...)
		} else {
			offspringGenes = append(offspringGenes, cloneRow(parentA), cloneRow(parentB))
		}
	}
	if len(offspringGenes) > d.NumOffsprings {
		offspringGenes = offspringGenes[:d.NumOffsprings]
	}
	offspringGenes = d.Mutation(offspringGenes, d.MutationRate, d.RNG)

	offspring := NewPopulation(offspringGenes)
	if err := d.Evaluator.Evaluate(offspring); err != nil {
		return nil, err
	}

	if d.Cleaner != nil {
		offspring = d.Cleaner.Clean(offspring, pop)
		if offspring.Len() == 0 {
			d.emit(WarnEmptyPopulation, "offspring pool empty after duplicate cleaning")
			return pop, nil
		}
	}

	combined := pop.Concat(offspring)
	survivors, err := d.Survival.Survive(combined, d.PopulationSize, d.RNG)
	if err != nil {
		return nil, err
	}
	if survivors.Len() < d.PopulationSize {
		d.emit(WarnEmptyPopulation, "survivor pool smaller than population size, padding by cyclic resampling",
			"got", survivors.Len(), "want", d.PopulationSize)
		survivors = d.padTo(survivors, d.PopulationSize)
	}
	FastNonDominatedSort(survivors)
	return survivors, nil
}

func (d *Driver) filterFeasible(pop *Population) *Population {
	keep := make([]int, 0, pop.Len())
	for i := 0; i < pop.Len(); i++ {
		if pop.At(i).Feasible() {
			keep = append(keep, i)
		}
	}
	return pop.Slice(keep)
}

// padTo cyclically resamples pop's existing members until it reaches
// target, used when duplicate cleaning or feasibility filtering leaves
// fewer individuals than the population size requires.
func (d *Driver) padTo(pop *Population, target int) *Population {
	if pop.Len() == 0 || pop.Len() >= target {
		return pop
	}
	indices := make([]int, 0, target)
	for i := 0; i < pop.Len(); i++ {
		indices = append(indices, i)
	}
	for len(indices) < target {
		indices = append(indices, indices[len(indices)-pop.Len()])
	}
	return pop.Slice(indices)
}

func (d *Driver) emit(kind, msg string, keysAndValues ...interface{}) {
	d.Emit(1, kind+": "+msg, keysAndValues...)
}

func cloneRow(row []float64) []float64 {
	return append([]float64{}, row...)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package moea

import (
	"time"

	"golang.org/x/exp/rand"
)

// Builder assembles a Driver, validating the configuration surface spec.md
// §4.7 describes before anything runs. Grounded in the descheduler
// sibling's ValidateMultiObjectiveArgs/SetDefaults_MultiObjectiveArgs
// pattern: required fields are rejected eagerly, rates are range-checked,
// and anything left unset falls back to an explicit default rather than a
// zero value.
type Builder struct {
	numVars        int
	populationSize int
	numOffsprings  int
	numIterations  int
	crossoverRate  float64
	mutationRate   float64
	keepInfeasible bool
	seed           *uint64
	bounds         []Bounds

	sampler     Sampler
	selection   Selector
	survival    Survivor
	crossover   Crossover
	mutation    Mutation
	cleaner     DuplicateCleaner
	fitness     FitnessFunc
	constraints ConstraintFunc
	emit        Emitter
	observer    Observer
}

// NewBuilder returns a Builder with the teacher's NSGA-II defaults for
// crossover and mutation rate (0.8 and 0.1 respectively). The sizes,
// sampler, selection, survival, crossover, mutation, and fitness must be
// set explicitly; seed, emitter, and observer fall back to defaults in
// Build, and the remaining settings are optional.
func NewBuilder() *Builder {
	return &Builder{crossoverRate: 0.8, mutationRate: 0.1}
}

func (b *Builder) WithNumVars(n int) *Builder              { b.numVars = n; return b }
func (b *Builder) WithPopulationSize(n int) *Builder       { b.populationSize = n; return b }
func (b *Builder) WithNumOffsprings(n int) *Builder        { b.numOffsprings = n; return b }
func (b *Builder) WithNumIterations(n int) *Builder        { b.numIterations = n; return b }
func (b *Builder) WithCrossoverRate(rate float64) *Builder { b.crossoverRate = rate; return b }
func (b *Builder) WithMutationRate(rate float64) *Builder  { b.mutationRate = rate; return b }
func (b *Builder) WithKeepInfeasible(keep bool) *Builder   { b.keepInfeasible = keep; return b }
func (b *Builder) WithSeed(seed uint64) *Builder           { b.seed = &seed; return b }
func (b *Builder) WithBounds(bounds []Bounds) *Builder     { b.bounds = bounds; return b }
func (b *Builder) WithSampler(s Sampler) *Builder          { b.sampler = s; return b }
func (b *Builder) WithSelection(s Selector) *Builder       { b.selection = s; return b }
func (b *Builder) WithSurvival(s Survivor) *Builder        { b.survival = s; return b }
func (b *Builder) WithCrossover(c Crossover) *Builder      { b.crossover = c; return b }
func (b *Builder) WithMutation(m Mutation) *Builder        { b.mutation = m; return b }
func (b *Builder) WithDuplicateCleaner(c DuplicateCleaner) *Builder {
	b.cleaner = c
	return b
}
func (b *Builder) WithFitness(f FitnessFunc) *Builder         { b.fitness = f; return b }
func (b *Builder) WithConstraints(c ConstraintFunc) *Builder  { b.constraints = c; return b }
func (b *Builder) WithEmitter(e Emitter) *Builder             { b.emit = e; return b }
func (b *Builder) WithObserver(o Observer) *Builder           { b.observer = o; return b }

func required(field string, missing bool) error {
	if missing {
		return &ConfigurationError{Field: field, Err: errRequired}
	}
	return nil
}

var errRequired = configRequiredError{}

type configRequiredError struct{}

func (configRequiredError) Error() string { return "required but not set" }

// Build validates the accumulated settings and returns a ready-to-run
// Driver, or the first ConfigurationError encountered.
func (b *Builder) Build() (*Driver, error) {
	if err := required("NumVars", b.numVars <= 0); err != nil {
		return nil, err
	}
	if err := required("PopulationSize", b.populationSize < 2); err != nil {
		return nil, err
	}
	if err := required("NumOffsprings", b.numOffsprings < 2); err != nil {
		return nil, err
	}
	if err := required("NumIterations", b.numIterations < 1); err != nil {
		return nil, err
	}
	if b.crossoverRate < 0 || b.crossoverRate > 1 {
		return nil, &ConfigurationError{Field: "CrossoverRate", Err: errOutOfRange}
	}
	if b.mutationRate < 0 || b.mutationRate > 1 {
		return nil, &ConfigurationError{Field: "MutationRate", Err: errOutOfRange}
	}
	if err := required("Sampler", b.sampler == nil); err != nil {
		return nil, err
	}
	if err := required("Selection", b.selection == nil); err != nil {
		return nil, err
	}
	if err := required("Survival", b.survival == nil); err != nil {
		return nil, err
	}
	if err := required("Crossover", b.crossover == nil); err != nil {
		return nil, err
	}
	if err := required("Mutation", b.mutation == nil); err != nil {
		return nil, err
	}
	if err := required("Fitness", b.fitness == nil); err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	if b.seed != nil {
		seed = *b.seed
	}
	rng := rand.New(rand.NewSource(seed))

	emit := b.emit
	if emit == nil {
		emit = defaultEmitter
	}
	observer := b.observer
	if observer == nil {
		observer = noopObserver{}
	}

	return &Driver{
		NumVars:        b.numVars,
		PopulationSize: b.populationSize,
		NumOffsprings:  b.numOffsprings,
		NumIterations:  b.numIterations,
		CrossoverRate:  b.crossoverRate,
		MutationRate:   b.mutationRate,
		KeepInfeasible: b.keepInfeasible,
		Sampler:        b.sampler,
		Selection:      b.selection,
		Survival:       b.survival,
		Crossover:      b.crossover,
		Mutation:       b.mutation,
		Cleaner:        b.cleaner,
		Evaluator:      &Evaluator{Fitness: b.fitness, Constraints: b.constraints, Bounds: b.bounds},
		RNG:            rng,
		Emit:           emit,
		Observer:       observer,
	}, nil
}

type outOfRangeError struct{}

func (outOfRangeError) Error() string { return "must be in [0, 1]" }

var errOutOfRange = outOfRangeError{}

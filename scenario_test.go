package moea_test

import (
	"math"
	"testing"

	moea "github.com/andresliszt/moo-go"
	"github.com/andresliszt/moo-go/benchmarks"
	"github.com/andresliszt/moo-go/operators"
	"github.com/andresliszt/moo-go/survival"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioBinaryKnapsackFindsKnownOptimum is S1: a 5-item 0/1 knapsack
// solved with NSGA-II and binary operators must surface the (1,0,0,1,1)
// selection, fitness (-7,-15), in the final best set.
func TestScenarioBinaryKnapsackFindsKnownOptimum(t *testing.T) {
	driver, err := moea.NewBuilder().
		WithNumVars(5).
		WithPopulationSize(16).
		WithNumOffsprings(16).
		WithNumIterations(10).
		WithSeed(42).
		WithSampler(operators.NewUniformBinarySampler()).
		WithSelection(moea.NewRankScoreSelector(moea.ScoreMaximize)).
		WithSurvival(survival.NSGA2{}).
		WithCrossover(operators.NewOnePointCrossover()).
		WithMutation(operators.NewBitFlipMutation()).
		WithDuplicateCleaner(moea.ExactCleaner{}).
		WithFitness(benchmarks.KnapsackFitness).
		WithConstraints(benchmarks.KnapsackConstraints).
		Build()
	require.NoError(t, err)

	_, best, err := driver.Run()
	require.NoError(t, err)

	found := false
	for i := 0; i < best.Len(); i++ {
		genes := best.Genes[i]
		if genes[0] >= 0.5 && genes[1] < 0.5 && genes[2] < 0.5 && genes[3] >= 0.5 && genes[4] >= 0.5 {
			assert.InDelta(t, -7.0, best.Fitness[i][0], 1e-9)
			assert.InDelta(t, -15.0, best.Fitness[i][1], 1e-9)
			found = true
		}
	}
	assert.True(t, found, "expected knapsack selection (1,0,0,1,1) in the best set")
}

// TestScenarioZDT3CoversDisconnectedSegments is S2: ZDT3's front has five
// disconnected segments in f1; a converged NSGA-II run should place best
// points in at least two of the five 0.2-wide f1 bins.
func TestScenarioZDT3CoversDisconnectedSegments(t *testing.T) {
	numVars := 30
	bounds := benchmarks.ZDT3Bounds(numVars)
	driver, err := moea.NewBuilder().
		WithNumVars(numVars).
		WithPopulationSize(60).
		WithNumOffsprings(60).
		WithNumIterations(80).
		WithSeed(7).
		WithBounds(bounds).
		WithSampler(operators.NewUniformRealSampler(bounds)).
		WithSelection(moea.NewRankScoreSelector(moea.ScoreMaximize)).
		WithSurvival(survival.NSGA2{}).
		WithCrossover(operators.NewSBXCrossover(bounds, 15)).
		WithMutation(operators.NewPolynomialMutation(bounds, 20)).
		WithDuplicateCleaner(moea.CloseCleaner{Epsilon: 1e-6}).
		WithFitness(benchmarks.ZDT3Fitness).
		Build()
	require.NoError(t, err)

	_, best, err := driver.Run()
	require.NoError(t, err)
	require.Greater(t, best.Len(), 1)

	segments := map[int]bool{}
	for i := 0; i < best.Len(); i++ {
		f1 := best.Fitness[i][0]
		segments[int(f1*5)] = true
	}
	assert.GreaterOrEqual(t, len(segments), 2, "expected points spread across multiple ZDT3 segments")
}

// TestScenarioZDT1AgeMoeaApproachesTheoreticalFront is S3: AGE-MOEA on
// ZDT1 should bring the obtained front close to f2 = 1 - sqrt(f1).
func TestScenarioZDT1AgeMoeaApproachesTheoreticalFront(t *testing.T) {
	numVars := 30
	bounds := benchmarks.ZDT1Bounds(numVars)
	driver, err := moea.NewBuilder().
		WithNumVars(numVars).
		WithPopulationSize(40).
		WithNumOffsprings(40).
		WithNumIterations(60).
		WithSeed(3).
		WithBounds(bounds).
		WithSampler(operators.NewUniformRealSampler(bounds)).
		WithSelection(moea.NewRankScoreSelector(moea.ScoreMaximize)).
		WithSurvival(survival.AGEMOEA{}).
		WithCrossover(operators.NewSBXCrossover(bounds, 15)).
		WithMutation(operators.NewPolynomialMutation(bounds, 20)).
		WithDuplicateCleaner(moea.CloseCleaner{Epsilon: 1e-6}).
		WithFitness(benchmarks.ZDT1Fitness).
		Build()
	require.NoError(t, err)

	_, best, err := driver.Run()
	require.NoError(t, err)
	require.Greater(t, best.Len(), 0)

	sumSq := 0.0
	for i := 0; i < best.Len(); i++ {
		f1, f2 := best.Fitness[i][0], best.Fitness[i][1]
		want := 1 - math.Sqrt(math.Max(f1, 0))
		diff := f2 - want
		sumSq += diff * diff
	}
	mse := sumSq / float64(best.Len())
	assert.Less(t, mse, 5e-1, "expected obtained front reasonably close to the ZDT1 theoretical front")
}

// TestScenarioTwoTargetsKeepsBestOnTheSegment is S5: the two-sphere
// problem's Pareto-optimal set lies on x2 = 0, x1 in [0, 1].
func TestScenarioTwoTargetsKeepsBestOnTheSegment(t *testing.T) {
	bounds := benchmarks.TwoTargetsBounds()
	driver, err := moea.NewBuilder().
		WithNumVars(2).
		WithPopulationSize(40).
		WithNumOffsprings(40).
		WithNumIterations(50).
		WithSeed(5).
		WithBounds(bounds).
		WithSampler(operators.NewUniformRealSampler(bounds)).
		WithSelection(moea.NewRankScoreSelector(moea.ScoreMaximize)).
		WithSurvival(survival.NSGA2{}).
		WithCrossover(operators.NewSBXCrossover(bounds, 15)).
		WithMutation(operators.NewPolynomialMutation(bounds, 20)).
		WithDuplicateCleaner(moea.CloseCleaner{Epsilon: 1e-6}).
		WithFitness(benchmarks.TwoTargetsFitness).
		Build()
	require.NoError(t, err)

	_, best, err := driver.Run()
	require.NoError(t, err)
	require.Greater(t, best.Len(), 0)

	for i := 0; i < best.Len(); i++ {
		x2 := best.Genes[i][1]
		assert.InDelta(t, 0.0, x2, 0.15, "expected best individuals near x2=0")
	}
}

// TestScenarioSphereConvergesNearZero is S6: a single-objective sphere
// should drive the best individual's fitness close to zero.
func TestScenarioSphereConvergesNearZero(t *testing.T) {
	numVars := 10
	bounds := benchmarks.SphereBounds(numVars)
	driver, err := moea.NewBuilder().
		WithNumVars(numVars).
		WithPopulationSize(50).
		WithNumOffsprings(50).
		WithNumIterations(50).
		WithSeed(1).
		WithBounds(bounds).
		WithSampler(operators.NewUniformRealSampler(bounds)).
		WithSelection(moea.NewRankScoreSelector(moea.ScoreMaximize)).
		WithSurvival(survival.NSGA2{}).
		WithCrossover(operators.NewSBXCrossover(bounds, 15)).
		WithMutation(operators.NewPolynomialMutation(bounds, 20)).
		WithDuplicateCleaner(moea.CloseCleaner{Epsilon: 1e-9}).
		WithFitness(benchmarks.SphereFitness).
		Build()
	require.NoError(t, err)

	_, best, err := driver.Run()
	require.NoError(t, err)
	require.Greater(t, best.Len(), 0)

	min := math.Inf(1)
	for i := 0; i < best.Len(); i++ {
		if best.Fitness[i][0] < min {
			min = best.Fitness[i][0]
		}
	}
	assert.Less(t, min, 1e-4, "expected the best sphere individual's fitness to converge below 1e-4")
}

// TestScenarioEXPO2WithIBEAHVRunsToCompletion is S4: a smaller-scale
// smoke run of IBEA-HV against EXPO2, checking the driver completes and
// produces a feasible, correctly-shaped front rather than asserting exact
// convergence (the full μ=600, T=600 configuration is too expensive for a
// unit test).
func TestScenarioEXPO2WithIBEAHVRunsToCompletion(t *testing.T) {
	numVars := 10
	bounds := benchmarks.EXPO2Bounds(numVars)
	driver, err := moea.NewBuilder().
		WithNumVars(numVars).
		WithPopulationSize(24).
		WithNumOffsprings(24).
		WithNumIterations(20).
		WithSeed(21).
		WithBounds(bounds).
		WithSampler(operators.NewUniformRealSampler(bounds)).
		WithSelection(moea.NewRandomSelector()).
		WithSurvival(&survival.IBEAHV{Reference: []float64{4, 4}, Kappa: 0.05}).
		WithCrossover(operators.NewSBXCrossover(bounds, 15)).
		WithMutation(operators.NewPolynomialMutation(bounds, 20)).
		WithDuplicateCleaner(moea.CloseCleaner{Epsilon: 1e-6}).
		WithFitness(benchmarks.EXPO2Fitness).
		Build()
	require.NoError(t, err)

	final, best, err := driver.Run()
	require.NoError(t, err)
	assert.Equal(t, 24, final.Len())
	assert.Greater(t, best.Len(), 0)
	for i := 0; i < best.Len(); i++ {
		assert.Len(t, best.Fitness[i], 2)
	}
}

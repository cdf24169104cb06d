package gacore

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/sabrinesaouli/saga/cdcl"
)

// GA owns a Population, a FitnessCache, and an RNG for the duration of one
// run. The Formula and the clause source are borrowed read-only.
type GA struct {
	formula    *Formula
	evaluator  *FitnessEvaluator
	cache      *FitnessCache
	population *Population
	cfg        Config

	rngMu sync.Mutex
	rng   *rand.Rand

	drawCount atomic.Int64
}

// New validates cfg and builds a GA ready to Run against formula and
// source. seed makes the run reproducible; pass a value from NewSeed for a
// fresh non-deterministic run.
func New(formula *Formula, source cdcl.ClauseSource, cfg Config, seed int64) (*GA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cache, err := NewFitnessCache(cfg.CacheCapacity)
	if err != nil {
		return nil, err
	}
	return &GA{
		formula:   formula,
		evaluator: NewFitnessEvaluator(source, cache),
		cache:     cache,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
	}, nil
}

// float64 draws a thread-safe uniform float in [0,1), counting the draw.
func (g *GA) float64() float64 {
	g.rngMu.Lock()
	defer g.rngMu.Unlock()
	g.drawCount.Add(1)
	return g.rng.Float64()
}

// DrawCount returns the number of RNG draws made through float64 so far, for
// checkpoint.Snapshot. Only population initialisation draws through
// float64; the draws made by selection, crossover, mutation and survivor
// selection use g.rng directly and are not counted.
func (g *GA) DrawCount() int64 {
	return g.drawCount.Load()
}

// Population exposes the live Population for inspection (e.g. checkpointing
// mid-run); callers must not mutate the returned value.
func (g *GA) Population() *Population {
	return g.population
}

func (g *GA) initializePopulation() {
	n := g.formula.NumVariables
	m := g.formula.NumClauses
	sols := make([]*Solution, g.cfg.PopulationSize)
	for i := range sols {
		sol := NewSolution(n, m)
		for v := 1; v <= n; v++ {
			if g.formula.Fix[v] {
				sol.Bits[v] = g.formula.FixedBit(v)
				continue
			}
			if g.float64() < 0.5 {
				sol.Bits[v] = 1
			}
		}
		sols[i] = sol
	}
	g.population = NewPopulation(sols)
}

// checkInvariants verifies the fixed-variable pin and population-size
// invariants, returning ErrInvariantViolation wrapped with detail on
// failure. It is cheap enough to run every generation in release builds;
// debugAssert additionally panics on the same conditions in debug builds so
// violations are caught at the point of introduction during development.
func (g *GA) checkInvariants() error {
	if g.population.Len() != g.cfg.PopulationSize {
		err := fmt.Errorf("%w: population size is %d, want %d", ErrInvariantViolation, g.population.Len(), g.cfg.PopulationSize)
		debugAssert(false, err.Error())
		return err
	}
	for _, sol := range g.population.Solutions {
		for v := 1; v <= g.formula.NumVariables; v++ {
			if !g.formula.Fix[v] {
				continue
			}
			if sol.Bits[v] != g.formula.FixedBit(v) {
				err := fmt.Errorf("%w: fixed variable %d flipped", ErrInvariantViolation, v)
				debugAssert(false, err.Error())
				return err
			}
		}
	}
	return nil
}

// Run executes initialise -> evaluate -> (select -> vary -> evaluate ->
// replace)* -> stop, returning the best Solution found. It stops at the
// first of: a satisfying individual appears, MaxIterations is reached, or
// ctx is cancelled (in which case interrupted is true and err is nil — an
// interruption is not a failure).
func (g *GA) Run(ctx context.Context) (best *Solution, interrupted bool, err error) {
	g.initializePopulation()
	g.evaluator.EvaluateAll(g.population.Solutions)
	g.population.SortByFitness()

	if err := g.checkInvariants(); err != nil {
		return nil, false, err
	}

	for iter := 0; iter < g.cfg.MaxIterations; iter++ {
		select {
		case <-ctx.Done():
			return g.population.Best().Clone(), true, nil
		default:
		}

		parents := g.cfg.Selection(g.rng, g.population)
		offspring := CreateOffspring(g.rng, parents, g.formula, g.cfg.Crossover, g.cfg.CrossoverRate, g.cfg.MutationRate)
		g.evaluator.EvaluateAll(offspring)
		g.cfg.Survivor(g.rng, g.population, offspring, g.cfg.PopulationSize)

		if err := g.checkInvariants(); err != nil {
			return nil, false, err
		}
		if g.population.Best().Fitness == 0 {
			break
		}
	}

	return g.population.Best().Clone(), false, nil
}

// PolarityHandoff instructs source to set its default decision polarity to
// sol.Bits[v+1] for every variable v in [0, n), mapping the 1-indexed GA bit
// layout to the solver's 0-indexed variable space.
func PolarityHandoff(source cdcl.ClauseSource, sol *Solution) {
	n := source.NumVariables()
	for v := 0; v < n; v++ {
		source.SetPolarity(v, sol.Bits[v+1] == 1)
	}
}

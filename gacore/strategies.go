package gacore

import "math/rand"

// The several crossover/selection/survivor variants are sibling strategies
// with no per-variant state to carry, so they are modelled as function
// values chosen at Config construction rather than an interface hierarchy.

// CrossoverFunc produces two children from two parents. Implementations
// must clone the parents' bits for the children and must never write a
// position the Formula marks fixed.
type CrossoverFunc func(rng *rand.Rand, parent1, parent2 *Solution, formula *Formula, crossoverRate float64) (child1, child2 *Solution)

// SelectionFunc draws parents from a Population, returning cloned
// Solutions (so later mutation never touches the live population).
type SelectionFunc func(rng *rand.Rand, pop *Population) []*Solution

// SurvivorFunc replaces the Population's members with the next generation
// drawn from the current members plus offspring. It must leave the
// Population at exactly its original length, sorted ascending by fitness.
type SurvivorFunc func(rng *rand.Rand, pop *Population, offspring []*Solution, targetSize int)

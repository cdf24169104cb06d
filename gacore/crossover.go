package gacore

import "math/rand"

// crossoverPoint draws a single point uniformly from [1, n-1]. n is the
// number of variables; callers must guard n >= 2.
func crossoverPoint(rng *rand.Rand, n int) int {
	return 1 + rng.Intn(n-1)
}

// swapRange exchanges bits in [lo, hi] between c1 and c2, skipping any
// position the Formula marks fixed.
func swapRange(c1, c2 *Solution, formula *Formula, lo, hi int) {
	for j := lo; j <= hi; j++ {
		if formula.Fix[j] {
			continue
		}
		c1.Bits[j], c2.Bits[j] = c2.Bits[j], c1.Bits[j]
	}
}

// OnePointCrossover exchanges bits in [1, k] for a single uniformly drawn
// point k, with probability crossoverRate; otherwise the children are
// straight copies of their parents.
func OnePointCrossover(rng *rand.Rand, parent1, parent2 *Solution, formula *Formula, crossoverRate float64) (*Solution, *Solution) {
	c1, c2 := parent1.Clone(), parent2.Clone()
	n := formula.NumVariables
	if n < 2 || rng.Float64() >= crossoverRate {
		return c1, c2
	}
	k := crossoverPoint(rng, n)
	swapRange(c1, c2, formula, 1, k)
	return c1, c2
}

// TwoPointCrossover exchanges bits in [1, k1] ∪ [k2, n] for two uniformly
// drawn points k1 <= k2.
func TwoPointCrossover(rng *rand.Rand, parent1, parent2 *Solution, formula *Formula, crossoverRate float64) (*Solution, *Solution) {
	c1, c2 := parent1.Clone(), parent2.Clone()
	n := formula.NumVariables
	if n < 2 || rng.Float64() >= crossoverRate {
		return c1, c2
	}
	k1, k2 := crossoverPoint(rng, n), crossoverPoint(rng, n)
	if k1 > k2 {
		k1, k2 = k2, k1
	}
	swapRange(c1, c2, formula, 1, k1)
	swapRange(c1, c2, formula, k2, n)
	return c1, c2
}

// ThreePointCrossover exchanges bits in [1, k1] ∪ [k2, k3] for three
// uniformly drawn points k1 <= k2 <= k3.
func ThreePointCrossover(rng *rand.Rand, parent1, parent2 *Solution, formula *Formula, crossoverRate float64) (*Solution, *Solution) {
	c1, c2 := parent1.Clone(), parent2.Clone()
	n := formula.NumVariables
	if n < 2 || rng.Float64() >= crossoverRate {
		return c1, c2
	}
	points := []int{crossoverPoint(rng, n), crossoverPoint(rng, n), crossoverPoint(rng, n)}
	// insertion sort of three elements, no need for sort.Ints overhead
	if points[0] > points[1] {
		points[0], points[1] = points[1], points[0]
	}
	if points[1] > points[2] {
		points[1], points[2] = points[2], points[1]
	}
	if points[0] > points[1] {
		points[0], points[1] = points[1], points[0]
	}
	k1, k2, k3 := points[0], points[1], points[2]
	swapRange(c1, c2, formula, 1, k1)
	swapRange(c1, c2, formula, k2, k3)
	return c1, c2
}

// CreateOffspring runs crossover over successive parent pairs, then always
// mutates both resulting children, regardless of whether crossover fired.
// An unpaired trailing parent (odd-length parents) is dropped.
func CreateOffspring(rng *rand.Rand, parents []*Solution, formula *Formula, crossover CrossoverFunc, crossoverRate, mutationRate float64) []*Solution {
	offspring := make([]*Solution, 0, len(parents))
	for i := 0; i+1 < len(parents); i += 2 {
		c1, c2 := crossover(rng, parents[i], parents[i+1], formula, crossoverRate)
		Mutate(rng, c1, formula, mutationRate)
		Mutate(rng, c2, formula, mutationRate)
		offspring = append(offspring, c1, c2)
	}
	return offspring
}

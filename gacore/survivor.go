package gacore

import "math/rand"

// solutionsEqual compares two Solutions structurally, treating nil as never
// equal to a non-nil Solution.
func solutionsEqual(a, b *Solution) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}

// dedupAdjacentBounded removes adjacent duplicates from pool, but only the
// first maxErasures comparisons are allowed to find (and drop) a duplicate;
// once that budget is spent, every remaining element is kept regardless of
// equality. This guarantees the result has length >= len(pool) -
// maxErasures, and with maxErasures == len(pool) - P the result is always
// >= P. It is a bounded, order-dependent dedup, not a global uniqueness
// pass.
func dedupAdjacentBounded(pool []*Solution, maxErasures int) []*Solution {
	if len(pool) == 0 || maxErasures <= 0 {
		return pool
	}
	out := make([]*Solution, 0, len(pool))
	out = append(out, pool[0])
	comparisons := 0
	for i := 1; i < len(pool); i++ {
		cur := pool[i]
		if comparisons < maxErasures {
			comparisons++
			if solutionsEqual(cur, out[len(out)-1]) {
				continue
			}
		}
		out = append(out, cur)
	}
	return out
}

// combinedPool returns a fresh slice holding the Population's current
// members followed by offspring, sorted ascending by fitness after the
// bounded dedup pass.
func combinedPool(pop *Population, offspring []*Solution, targetSize int) []*Solution {
	pool := make([]*Solution, 0, pop.Len()+len(offspring))
	pool = append(pool, pop.Solutions...)
	pool = append(pool, offspring...)
	maxErasures := len(pool) - targetSize
	pool = dedupAdjacentBounded(pool, maxErasures)
	sortSolutions(pool)
	return pool
}

func sortSolutions(sols []*Solution) {
	// insertion-free stable sort via the same comparator Population uses.
	p := &Population{Solutions: sols}
	p.SortByFitness()
}

// ElitistSurvivor forms the combined pool of Population ∪ offspring,
// deduplicates and sorts it ascending by fitness, keeps the best
// targetSize/2 deterministically, then fills the remaining slots by
// shuffling the rest of the pool and taking the first
// targetSize-targetSize/2 of the shuffled remainder. A final sort restores
// ascending order, since the shuffled half is not itself ordered and the
// Population must stay sorted after every survivor step.
func ElitistSurvivor(rng *rand.Rand, pop *Population, offspring []*Solution, targetSize int) {
	pool := combinedPool(pop, offspring, targetSize)

	nbest := targetSize / 2
	nworst := targetSize - nbest

	elite := pool[:nbest]
	remainder := append([]*Solution(nil), pool[nbest:]...)
	rng.Shuffle(len(remainder), func(i, j int) { remainder[i], remainder[j] = remainder[j], remainder[i] })

	next := make([]*Solution, 0, targetSize)
	next = append(next, elite...)
	next = append(next, remainder[:nworst]...)

	pop.Replace(next)
	pop.SortByFitness()
}

// PlainSurvivor forms the same deduplicated, sorted combined pool and keeps
// only the best targetSize members.
func PlainSurvivor(rng *rand.Rand, pop *Population, offspring []*Solution, targetSize int) {
	pool := combinedPool(pop, offspring, targetSize)
	pop.Replace(pool[:targetSize])
	pop.SortByFitness()
}

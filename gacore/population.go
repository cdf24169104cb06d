package gacore

import "sort"

// Population is a fixed-length, ordered sequence of Solutions. After every
// generation it is sorted ascending by fitness so index 0 is the best.
type Population struct {
	Solutions []*Solution
}

// NewPopulation wraps an existing slice of Solutions.
func NewPopulation(solutions []*Solution) *Population {
	return &Population{Solutions: solutions}
}

// Len returns the number of Solutions.
func (p *Population) Len() int {
	return len(p.Solutions)
}

// SortByFitness sorts the Population ascending by fitness. The sort is
// stable so equal-fitness members keep their relative order, which keeps
// elitist survivor selection deterministic given a deterministic pool order.
func (p *Population) SortByFitness() {
	sort.SliceStable(p.Solutions, func(i, j int) bool {
		return p.Solutions[i].Fitness < p.Solutions[j].Fitness
	})
}

// Best returns the lowest-fitness Solution. Callers must call
// SortByFitness first; Best does not sort implicitly so callers can batch
// several replacements before paying the sort cost once.
func (p *Population) Best() *Solution {
	if len(p.Solutions) == 0 {
		return nil
	}
	return p.Solutions[0]
}

// Replace swaps in a new slice of Solutions wholesale (used by survivor
// selection once the next generation has been assembled).
func (p *Population) Replace(solutions []*Solution) {
	p.Solutions = solutions
}

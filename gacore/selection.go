package gacore

import "math/rand"

// TournamentSelect draws P/2 parents by repeated 2-way tournaments: each
// round draws two indices uniformly from [0, P) and keeps the lower-fitness
// Solution. Exact ties keep the first-drawn candidate, a choice that is
// behaviourally symmetric since both candidates were drawn uniformly at
// random to begin with. Returned Solutions are clones.
func TournamentSelect(rng *rand.Rand, pop *Population) []*Solution {
	n := pop.Len()
	out := make([]*Solution, 0, n/2)
	for i := 0; i < n/2; i++ {
		i1 := rng.Intn(n)
		i2 := rng.Intn(n)
		c1, c2 := pop.Solutions[i1], pop.Solutions[i2]
		if c1.Fitness <= c2.Fitness {
			out = append(out, c1.Clone())
		} else {
			out = append(out, c2.Clone())
		}
	}
	return out
}

// UniformRandomSelect draws P/2 parents by drawing that many independent
// uniform indices from [0, P), with replacement. Returned Solutions are
// clones.
func UniformRandomSelect(rng *rand.Rand, pop *Population) []*Solution {
	n := pop.Len()
	out := make([]*Solution, 0, n/2)
	for i := 0; i < n/2; i++ {
		out = append(out, pop.Solutions[rng.Intn(n)].Clone())
	}
	return out
}

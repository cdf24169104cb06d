package gacore

import "math/rand"

// Mutate visits every variable in formula.CentralityOrder and, with
// probability mutationRate, flips sol's bit for that variable unless the
// Formula pins it. Mutation is evaluated independently per (child, variable)
// pair — Mutate only ever reads and writes sol's own bits, so calling it
// once per child (as CreateOffspring does) cannot couple one child's flips
// to another's.
func Mutate(rng *rand.Rand, sol *Solution, formula *Formula, mutationRate float64) {
	for _, v := range formula.CentralityOrder {
		if formula.Fix[v] {
			continue
		}
		if rng.Float64() < mutationRate {
			sol.Bits[v] ^= 1
		}
	}
}

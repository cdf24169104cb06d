package gacore

import "github.com/sabrinesaouli/saga/cdcl"

// FitnessEvaluator scores a Solution against the clause database borrowed
// from a cdcl.ClauseSource, consulting and populating a FitnessCache.
type FitnessEvaluator struct {
	clauses []cdcl.Clause
	cache   *FitnessCache
}

// NewFitnessEvaluator captures the clause source's original clauses once
// (they are read-only for the lifetime of the GA, per the Formula's
// lifecycle) and pairs them with cache.
func NewFitnessEvaluator(source cdcl.ClauseSource, cache *FitnessCache) *FitnessEvaluator {
	return &FitnessEvaluator{clauses: source.OriginalClauses(), cache: cache}
}

// Evaluate returns the number of clauses left unsatisfied by sol, consulting
// the cache first and populating it on a miss. The result is a deterministic
// function of the clause database and sol's bits.
//
// A literal satisfies a clause when its bit disagrees with its sign: a
// positive literal (sign false) is satisfied by bit 1, a negated literal
// (sign true) is satisfied by bit 0 — equivalent to bit != sign as a
// boolean.
func (e *FitnessEvaluator) Evaluate(sol *Solution) int {
	if cached, ok := e.cache.Get(sol); ok {
		return cached
	}

	unsat := 0
	for _, clause := range e.clauses {
		satisfied := false
		for _, lit := range clause.Literals() {
			v := lit.Var + 1
			bit := sol.Bits[v]
			signBit := byte(0)
			if lit.Sign {
				signBit = 1
			}
			if bit != signBit {
				satisfied = true
				break
			}
		}
		if !satisfied {
			unsat++
		}
	}

	e.cache.Put(sol, unsat)
	return unsat
}

// EvaluateAll scores every Solution in sols in place.
func (e *FitnessEvaluator) EvaluateAll(sols []*Solution) {
	for _, s := range sols {
		s.Fitness = e.Evaluate(s)
	}
}

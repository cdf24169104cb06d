package gacore

import "github.com/sabrinesaouli/saga/cdcl"

// newTestFormula builds a Formula with centrality order 1..n (ascending) and
// no fixed variables, for tests that don't care about occurrence-based
// ordering.
func newTestFormula(n, m int) *Formula {
	f := NewFormula(n, m)
	order := make([]int, n)
	for i := range order {
		order[i] = i + 1
	}
	f.CentralityOrder = order
	return f
}

// newTestSource builds a cdcl.MemoryStore from a slice of clauses, each a
// slice of signed 1-based DIMACS literals.
func newTestSource(clauses [][]int) *cdcl.MemoryStore {
	store := cdcl.NewMemoryStore()
	for _, clause := range clauses {
		if err := store.AddClause(clause...); err != nil {
			panic(err)
		}
	}
	return store
}

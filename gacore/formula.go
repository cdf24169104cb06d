package gacore

// Formula is the immutable, post-parse view of a CNF instance: variable and
// clause counts, the fixed-variable table contributed by unit clauses, and
// the centrality-ranked variable list consulted by mutation.
//
// Variables are 1-indexed in [1, NumVariables]; index 0 of every per-variable
// slice is reserved and unused so a variable number addresses its slot
// directly.
type Formula struct {
	NumVariables int
	NumClauses   int

	// Fix[v] is true iff v is pinned by a unit clause seen during parsing.
	Fix []bool

	// FixedValue[v] is the forced truth value; only meaningful where Fix[v].
	FixedValue []bool

	// CentralityOrder is a permutation of [1..NumVariables] sorted by
	// descending occurrence count across clauses, ties broken by ascending
	// variable index. It is the mutation candidate set, in visitation order.
	CentralityOrder []int
}

// NewFormula allocates a Formula for numVariables variables and numClauses
// clauses, with every variable unfixed. Callers populate Fix/FixedValue and
// CentralityOrder once parsing completes; the Formula is read-only
// thereafter.
func NewFormula(numVariables, numClauses int) *Formula {
	return &Formula{
		NumVariables: numVariables,
		NumClauses:   numClauses,
		Fix:          make([]bool, numVariables+1),
		FixedValue:   make([]bool, numVariables+1),
	}
}

// IsFixed reports whether variable v is pinned by a unit clause.
func (f *Formula) IsFixed(v int) bool {
	return f.Fix[v]
}

// FixedBit returns the forced bit (0 or 1) for a pinned variable. Callers
// must only invoke this where IsFixed(v) is true.
func (f *Formula) FixedBit(v int) byte {
	if f.FixedValue[v] {
		return 1
	}
	return 0
}

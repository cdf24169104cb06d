package cdcl

import "testing"

func TestMemoryStoreAddClause(t *testing.T) {
	tests := []struct {
		name      string
		lits      []int
		wantVars  int
		wantErr   bool
	}{
		{name: "positive and negative literals", lits: []int{1, -3, 4}, wantVars: 4},
		{name: "grows variables as needed", lits: []int{10}, wantVars: 10},
		{name: "rejects literal zero", lits: []int{1, 0, 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			err := store.AddClause(tt.lits...)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("AddClause(%v) = nil error, want error", tt.lits)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddClause(%v) = %v, want nil", tt.lits, err)
			}
			if got := store.NumVariables(); got != tt.wantVars {
				t.Errorf("NumVariables() = %d, want %d", got, tt.wantVars)
			}
		})
	}
}

func TestMemoryStoreOriginalClauses(t *testing.T) {
	store := NewMemoryStore()
	if err := store.AddClause(1, -2); err != nil {
		t.Fatal(err)
	}
	if err := store.AddClause(-1, 2, 3); err != nil {
		t.Fatal(err)
	}

	clauses := store.OriginalClauses()
	if len(clauses) != 2 {
		t.Fatalf("len(OriginalClauses()) = %d, want 2", len(clauses))
	}
	lits := clauses[0].Literals()
	if len(lits) != 2 || lits[0].Var != 0 || lits[0].Sign || lits[1].Var != 1 || !lits[1].Sign {
		t.Errorf("unexpected literals for first clause: %+v", lits)
	}

	// Mutating the returned slice must not affect the store's own clauses.
	clauses[0] = nil
	again := store.OriginalClauses()
	if again[0] == nil {
		t.Errorf("OriginalClauses() leaked internal slice to caller mutation")
	}
}

func TestMemoryStoreSetPolarity(t *testing.T) {
	store := NewMemoryStore()
	store.NewVariable()
	store.NewVariable()

	store.SetPolarity(1, true)
	if !store.Polarity(1) {
		t.Errorf("Polarity(1) = false, want true after SetPolarity(1, true)")
	}
	if store.Polarity(0) {
		t.Errorf("Polarity(0) = true, want false (never set)")
	}

	// Out-of-range indices are ignored, not panics.
	store.SetPolarity(99, true)
	if store.Polarity(99) {
		t.Errorf("Polarity(99) = true, want false for an out-of-range variable")
	}
}

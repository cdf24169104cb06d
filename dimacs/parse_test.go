package dimacs

import (
	"strings"
	"testing"
)

func TestParseUnitClauseFixesVariable(t *testing.T) {
	input := "c trivial SAT\np cnf 1 1\n1 0\n"
	res, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !res.Formula.Fix[1] || !res.Formula.FixedValue[1] {
		t.Errorf("Fix[1]=%v FixedValue[1]=%v, want true,true", res.Formula.Fix[1], res.Formula.FixedValue[1])
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", res.Warnings)
	}
}

func TestParseContradictoryUnitsIsMalformed(t *testing.T) {
	input := "p cnf 1 2\n1 0\n-1 0\n"
	_, err := Parse(strings.NewReader(input))
	if err == nil {
		t.Fatalf("Parse() error = nil, want ErrMalformedFormula for contradictory unit clauses")
	}
}

func TestParseHeaderClauseCountMismatchWarnsNotFails(t *testing.T) {
	input := "p cnf 2 5\n1 2 0\n-1 -2 0\n"
	res, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil (mismatch is a warning)", err)
	}
	if len(res.Warnings) == 0 {
		t.Errorf("Warnings = empty, want a clause-count mismatch warning")
	}
}

func TestParseMissingHeaderIsMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 0\n"))
	if err == nil {
		t.Fatalf("Parse() error = nil, want ErrMalformedFormula for missing header")
	}
}

func TestParseCentralityOrderDescendingOccurrence(t *testing.T) {
	// variable 1 appears in 3 clauses, variable 2 in 2, variable 3 in 1.
	input := "p cnf 3 3\n1 2 0\n1 2 3 0\n1 0\n"
	res, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []int{1, 2, 3}
	got := res.Formula.CentralityOrder
	if len(got) != len(want) {
		t.Fatalf("CentralityOrder = %v, want length %d", got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CentralityOrder = %v, want %v", got, want)
			break
		}
	}
}

func TestParseGrowsVariablesBeyondHeader(t *testing.T) {
	input := "p cnf 1 1\n1 2 0\n"
	res, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if res.Source.NumVariables() != 2 {
		t.Errorf("NumVariables() = %d, want 2", res.Source.NumVariables())
	}
	if len(res.Warnings) == 0 {
		t.Errorf("Warnings = empty, want a variable-count mismatch warning")
	}
}

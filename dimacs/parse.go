// Package dimacs parses DIMACS CNF input into a gacore.Formula and a
// cdcl.ClauseSource, tracking the per-variable occurrence histogram used
// to build centrality order.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/sabrinesaouli/saga/cdcl"
	"github.com/sabrinesaouli/saga/gacore"
)

// Result is everything Parse produces from one DIMACS stream.
type Result struct {
	Formula  *gacore.Formula
	Source   *cdcl.MemoryStore
	Warnings []string
}

// Parse reads a DIMACS CNF stream, building a Formula (fixed-variable table
// and centrality order included) alongside a cdcl.MemoryStore holding the
// same clauses, in a single pass.
//
// Header/clause-count mismatches are non-fatal and reported via
// Result.Warnings rather than failing outright; callers decide whether to
// log them. Structural problems — missing header, non-numeric literal, or a
// variable pinned by two unit clauses of opposite polarity — are fatal and
// returned wrapped in gacore.ErrMalformedFormula.
func Parse(r io.Reader) (*Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	store := cdcl.NewMemoryStore()
	var warnings []string
	declaredVars, declaredClauses := 0, 0
	headerSeen := false

	var occurrence []int
	fixedValue := map[int]bool{}

	var pending []int
	clauseCount := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		if line[0] == 'p' {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, fmt.Errorf("%w: malformed header %q", gacore.ErrMalformedFormula, line)
			}
			v, errV := strconv.Atoi(fields[2])
			c, errC := strconv.Atoi(fields[3])
			if errV != nil || errC != nil || v < 0 || c < 0 {
				return nil, fmt.Errorf("%w: malformed header %q", gacore.ErrMalformedFormula, line)
			}
			declaredVars, declaredClauses = v, c
			headerSeen = true
			occurrence = make([]int, v+1)
			for i := 0; i < v; i++ {
				store.NewVariable()
			}
			continue
		}
		if !headerSeen {
			return nil, fmt.Errorf("%w: clause data before %q header", gacore.ErrMalformedFormula, "p cnf")
		}

		for _, field := range strings.Fields(line) {
			lit, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: non-numeric literal %q", gacore.ErrMalformedFormula, field)
			}
			if lit == 0 {
				if err := finishClause(store, pending, &occurrence, fixedValue); err != nil {
					return nil, err
				}
				clauseCount++
				pending = pending[:0]
				continue
			}
			pending = append(pending, lit)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", gacore.ErrMalformedFormula, err)
	}
	if !headerSeen {
		return nil, fmt.Errorf("%w: missing %q header", gacore.ErrMalformedFormula, "p cnf")
	}
	if len(pending) > 0 {
		warnings = append(warnings, "trailing clause with no terminating 0")
		if err := finishClause(store, pending, &occurrence, fixedValue); err != nil {
			return nil, err
		}
		clauseCount++
	}

	if declaredVars != store.NumVariables() {
		warnings = append(warnings, fmt.Sprintf("header declared %d variables, saw %d", declaredVars, store.NumVariables()))
	}
	if declaredClauses != clauseCount {
		warnings = append(warnings, fmt.Sprintf("header declared %d clauses, saw %d", declaredClauses, clauseCount))
	}

	formula := gacore.NewFormula(store.NumVariables(), clauseCount)
	for v, want := range fixedValue {
		formula.Fix[v] = true
		formula.FixedValue[v] = want
	}
	formula.CentralityOrder = centralityOrder(occurrence)

	return &Result{Formula: formula, Source: store, Warnings: warnings}, nil
}

// finishClause registers one fully-read clause: bumps the occurrence count
// for every variable it mentions, adds the clause to store (which grows the
// store for any variable seen for the first time), and — if the clause is a
// unit clause — pins its variable, detecting a contradictory second unit
// clause on the same variable instead of letting the later write silently
// win.
func finishClause(store *cdcl.MemoryStore, lits []int, occurrence *[]int, fixedValue map[int]bool) error {
	if len(lits) == 0 {
		return nil
	}
	for _, lit := range lits {
		v := lit
		if v < 0 {
			v = -v
		}
		growOccurrence(occurrence, v)
		(*occurrence)[v]++
	}
	if err := store.AddClause(lits...); err != nil {
		return fmt.Errorf("%w: %v", gacore.ErrMalformedFormula, err)
	}
	if len(lits) == 1 {
		v := lits[0]
		want := v > 0
		if v < 0 {
			v = -v
		}
		if existing, ok := fixedValue[v]; ok && existing != want {
			return fmt.Errorf("%w: variable %d pinned by contradictory unit clauses", gacore.ErrMalformedFormula, v)
		}
		fixedValue[v] = want
	}
	return nil
}

func growOccurrence(occ *[]int, v int) {
	if v >= len(*occ) {
		grown := make([]int, v+1)
		copy(grown, *occ)
		*occ = grown
	}
}

// centralityOrder returns a permutation of [1..n] sorted by descending
// occurrence count, ties broken by ascending variable index, where n is
// len(occurrence)-1. Every variable is included, never truncated to a
// top fraction.
func centralityOrder(occurrence []int) []int {
	n := len(occurrence) - 1
	if n < 0 {
		n = 0
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i + 1
	}
	sort.SliceStable(order, func(i, j int) bool {
		oi, oj := occurrenceOf(occurrence, order[i]), occurrenceOf(occurrence, order[j])
		if oi != oj {
			return oi > oj
		}
		return order[i] < order[j]
	})
	return order
}

func occurrenceOf(occurrence []int, v int) int {
	if v < len(occurrence) {
		return occurrence[v]
	}
	return 0
}

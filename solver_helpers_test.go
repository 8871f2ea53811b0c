package dpll

import "testing"

// buildSolver constructs a Solver over numVars variables and the given
// clauses (each a slice of non-zero ints), using default options unless
// overridden by optFn.
func buildSolver(t *testing.T, numVars int, clauses [][]int, optFn func(*Options)) *Solver {
	t.Helper()
	f := NewFormula(numVars)
	for _, cls := range clauses {
		lits := make([]Literal, len(cls))
		for i, v := range cls {
			lits[i] = Literal(v)
		}
		c, ok, err := NewClause(lits, true)
		if err != nil {
			t.Fatalf("NewClause(%v): %v", cls, err)
		}
		if !ok {
			continue
		}
		if err := f.AddClause(c); err != nil {
			t.Fatalf("AddClause(%v): %v", cls, err)
		}
	}
	opts := NewOptions()
	if optFn != nil {
		optFn(&opts)
	}
	return NewSolver(f, opts)
}

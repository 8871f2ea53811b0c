package dpll

import "fmt"

// Formula is a CNF formula: a vector of clauses plus the single assignment
// vector that is the source of truth for the current partial model, plus a
// per-variable used flag. A Formula is built once (typically by a parser)
// and then owned by exactly one Solver for the duration of a solve.
type Formula struct {
	NumVars int
	clauses []Clause

	assignment   []assnVal
	variableUsed []bool
}

// NewFormula allocates an empty formula over variables [1, numVars].
func NewFormula(numVars int) *Formula {
	return &Formula{
		NumVars:      numVars,
		assignment:   make([]assnVal, numVars+1),
		variableUsed: make([]bool, numVars+1),
	}
}

// AddClause admits c into the formula after validating every literal's
// variable lies in [1, NumVars]. Admission marks the variables used.
func (f *Formula) AddClause(c Clause) error {
	for _, l := range c.lits {
		v := l.Var()
		if v < 1 || v > f.NumVars {
			return ErrInvariant(fmt.Sprintf("literal %d refers to variable outside [1, %d]", int(l), f.NumVars))
		}
	}
	for _, l := range c.lits {
		f.variableUsed[l.Var()] = true
	}
	f.clauses = append(f.clauses, c)
	return nil
}

// Clauses returns the formula's clauses. The returned slice must not be
// mutated.
func (f *Formula) Clauses() []Clause { return f.clauses }

// VariableUsed reports whether v appears in some clause of the formula.
func (f *Formula) VariableUsed(v int) bool { return f.variableUsed[v] }

// Assignment returns the value currently assigned to v.
func (f *Formula) Assignment(v int) assnVal { return f.assignment[v] }

// assign sets the value of v, returning an invariant error if v lies outside
// [1, NumVars]. The solver's branching, propagation, pure-literal and
// backtracking steps are its callers; the decision stack never writes the
// assignment itself.
func (f *Formula) assign(v int, val assnVal) error {
	if v < 1 || v > f.NumVars {
		return ErrInvariant(fmt.Sprintf("assign of variable %d outside [1, %d]", v, f.NumVars))
	}
	f.assignment[v] = val
	return nil
}

func (f *Formula) unassign(v int) {
	f.assignment[v] = unassigned
}

// Satisfied reports whether every clause of the formula evaluates to true
// under the current assignment.
func (f *Formula) Satisfied() bool {
	for _, c := range f.clauses {
		if !c.Sat(f.assignment) {
			return false
		}
	}
	return true
}

// HasConflict reports whether some clause of the formula is falsified in
// its entirety under the current assignment.
func (f *Formula) HasConflict() bool {
	for _, c := range f.clauses {
		if c.Conflict(f.assignment) {
			return true
		}
	}
	return false
}

// isLive reports whether c is not yet satisfied under the current
// assignment. Shared by propagation, pure-literal elimination, and the
// frequency/Jeroslow-Wang heuristics. Deliberately uncached: liveness
// changes on every assignment and backtrack, and tracking invalidation
// would cost more than recomputing it.
func (f *Formula) isLive(c Clause) bool {
	return !c.Sat(f.assignment)
}

// CompletedAssignment returns a copy of the assignment vector with every
// UNASSIGNED variable completed to FALSE, as required when reporting a
// SATISFIABLE result.
func (f *Formula) CompletedAssignment() []assnVal {
	out := make([]assnVal, len(f.assignment))
	copy(out, f.assignment)
	for v := 1; v <= f.NumVars; v++ {
		if out[v] == unassigned {
			out[v] = assnFalse
		}
	}
	return out
}

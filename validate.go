package dpll

// Validate checks that assignment (one entry per variable, index 0 unused,
// true/false only — no partial assignments) satisfies every clause of
// formula. Any SATISFIABLE result must pass this check.
func Validate(formula *Formula, assignment []bool) bool {
	av := make([]assnVal, len(assignment))
	for v := 1; v < len(assignment); v++ {
		if assignment[v] {
			av[v] = assnTrue
		} else {
			av[v] = assnFalse
		}
	}
	for _, c := range formula.clauses {
		if !c.Sat(av) {
			return false
		}
	}
	return true
}

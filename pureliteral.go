package dpll

// pureLiteral runs a single pass of pure-literal elimination: for every
// unassigned variable, it scans live clauses for the set of polarities in
// which the variable occurs; if only one polarity occurs, the variable is
// assigned to satisfy it, pushed as a propagation. Returns true iff at
// least one variable was assigned.
//
// Pure assignments cannot conflict with the current formula: they satisfy
// every live clause containing them and falsify none, so this is safe to
// run outside any decision frame.
func (s *Solver) pureLiteral() bool {
	seenPos := make([]bool, s.formula.NumVars+1)
	seenNeg := make([]bool, s.formula.NumVars+1)
	for _, c := range s.formula.clauses {
		if !s.formula.isLive(c) {
			continue
		}
		for _, l := range c.lits {
			v := l.Var()
			if s.formula.assignment[v] != unassigned {
				continue
			}
			if l.Positive() {
				seenPos[v] = true
			} else {
				seenNeg[v] = true
			}
		}
	}

	assignedAny := false
	for v := 1; v <= s.formula.NumVars; v++ {
		if s.formula.assignment[v] != unassigned {
			continue
		}
		pos, neg := seenPos[v], seenNeg[v]
		if pos == neg {
			// Not pure: appears in both polarities, or not at all.
			continue
		}
		val := assnFalse
		if pos {
			val = assnTrue
		}
		if err := s.formula.assign(v, val); err != nil {
			s.fatal = err
			return assignedAny
		}
		s.stack.push(stackEntry{variable: v, value: val, isDecision: false})
		s.stats.PureAssignments++
		s.logAssignment("pure", v, val)
		assignedAny = true
	}
	return assignedAny
}

package dpll

// backtrack scans the decision stack from the top for the most recent
// decision entry, pops everything above and including it (clearing the
// assignment of each popped variable), then re-pushes the flipped decision
// as a decision. Reports ok=false if the stack holds no decision (search
// exhausted at the root; the driver reports UNSATISFIABLE).
//
// The flipped decision is re-pushed as a decision, not a propagation, so
// the algorithm remains chronologically correct: "both polarities tried"
// is only discoverable by a subsequent conflict backtracking past this
// entry again. The triedBoth flag makes that explicit instead of
// re-scanning the stack for it on every conflict.
func (s *Solver) backtrack() bool {
	di := s.stack.lastDecisionIndex()
	if di == -1 {
		return false
	}
	d := s.stack.entries[di]
	if s.triedBoth[d.variable] {
		// This decision has already seen both polarities; it cannot
		// absorb another conflict. Pop it (and everything above) and
		// let the next iteration look further down the stack.
		s.popAbove(di - 1)
		return s.backtrack()
	}

	s.popAbove(di - 1)
	flipped := d.value.opposite()
	s.triedBoth[d.variable] = true
	if err := s.formula.assign(d.variable, flipped); err != nil {
		s.fatal = err
		return false
	}
	s.stack.push(stackEntry{variable: d.variable, value: flipped, isDecision: true})
	s.logAssignment("backtrack-flip", d.variable, flipped)
	return true
}

// popAbove pops every stack entry above index keep (exclusive), clearing
// each popped variable's assignment, and leaving the stack with exactly
// keep+1 entries.
func (s *Solver) popAbove(keep int) {
	for s.stack.len() > keep+1 {
		e, ok := s.stack.pop()
		if !ok {
			return
		}
		s.formula.unassign(e.variable)
		if e.isDecision {
			// This decision instance is gone entirely (not just
			// flipped): a future decision on the same variable, in
			// a different branch, starts fresh.
			s.triedBoth[e.variable] = false
		}
	}
}

func (a assnVal) opposite() assnVal {
	switch a {
	case assnTrue:
		return assnFalse
	case assnFalse:
		return assnTrue
	default:
		return unassigned
	}
}

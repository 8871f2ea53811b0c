package dpll

import "time"

// checkTermination inspects the resource limits once per driver iteration:
// elapsed wall-clock time, decision count, and the internal iteration
// safety cap. Returns a terminal Result and true if the solve must stop
// now.
func (s *Solver) checkTermination() (Result, bool) {
	if time.Since(s.startedAt) >= s.opts.Timeout {
		return TIMEOUT, true
	}
	if s.stats.Decisions >= int64(s.opts.MaxDecisions) {
		return UNKNOWN, true
	}
	if s.stats.Iterations >= maxIterations {
		return TIMEOUT, true
	}
	return 0, false
}

// progressGuard detects a no-progress iteration: no backtrack performed, no
// new assignment made, no new decision chosen. This is a defensive
// mechanism against implementation bugs producing livelock; it should
// never fire on a correct implementation solving a well-formed instance.
type progressGuard struct {
	stackSizeOnEntry int
}

func (s *Solver) enterIteration() progressGuard {
	return progressGuard{stackSizeOnEntry: s.stack.len()}
}

// noProgress reports whether the stack is unchanged from iteration entry.
func (g progressGuard) noProgress(s *Solver) bool {
	return s.stack.len() == g.stackSizeOnEntry
}

package dpll

import "fmt"

// Result is the terminal status of a solve.
type Result int

const (
	SATISFIABLE Result = iota
	UNSATISFIABLE
	UNKNOWN
	TIMEOUT
	MEMORY_ERROR
	ERROR
)

func (r Result) String() string {
	switch r {
	case SATISFIABLE:
		return "SATISFIABLE"
	case UNSATISFIABLE:
		return "UNSATISFIABLE"
	case UNKNOWN:
		return "UNKNOWN"
	case TIMEOUT:
		return "TIMEOUT"
	case MEMORY_ERROR:
		return "MEMORY_ERROR"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN_RESULT"
	}
}

// ExitCode maps a Result to the CLI surface's exit code, collapsing
// TIMEOUT into UNKNOWN's code.
func (r Result) ExitCode() int {
	switch r {
	case SATISFIABLE:
		return 10
	case UNSATISFIABLE:
		return 20
	case UNKNOWN, TIMEOUT:
		return 0
	default:
		return 1
	}
}

// Stats holds the solver's counters. They are purely informational: the
// set of counters may grow, but existing ones keep their meaning.
type Stats struct {
	Decisions             int64
	Propagations          int64
	PureAssignments       int64
	Restarts              int64
	Conflicts             int64
	ConflictsSinceRestart int64
	Iterations            int64
}

// String renders the counters as a fixed-width, right-aligned table, one
// counter per line.
func (s Stats) String() string {
	return fmt.Sprintf(
		"%12s %d\n%12s %d\n%12s %d\n%12s %d\n%12s %d\n%12s %d\n%12s %d",
		"decisions", s.Decisions,
		"propagations", s.Propagations,
		"pure", s.PureAssignments,
		"restarts", s.Restarts,
		"conflicts", s.Conflicts,
		"sinceRestart", s.ConflictsSinceRestart,
		"iterations", s.Iterations,
	)
}

// Solution is the outcome of a Solve call.
type Solution struct {
	Result Result
	// Assignment holds one entry per variable, index 0 unused, set only
	// when Result == SATISFIABLE. Unassigned variables left over from
	// search are completed to FALSE.
	Assignment []bool
	Stats      Stats
}

package dpll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultExitCodes(t *testing.T) {
	cases := map[Result]int{
		SATISFIABLE:   10,
		UNSATISFIABLE: 20,
		UNKNOWN:       0,
		TIMEOUT:       0,
		ERROR:         1,
		MEMORY_ERROR:  1,
	}
	for r, want := range cases {
		require.Equal(t, want, r.ExitCode(), "result %v", r)
	}
}

func TestResultString(t *testing.T) {
	require.Equal(t, "SATISFIABLE", SATISFIABLE.String())
	require.Equal(t, "UNSATISFIABLE", UNSATISFIABLE.String())
	require.Equal(t, "UNKNOWN", UNKNOWN.String())
	require.Equal(t, "TIMEOUT", TIMEOUT.String())
}

func TestStatsStringContainsAllCounters(t *testing.T) {
	s := Stats{
		Decisions:             3,
		Propagations:          7,
		PureAssignments:       1,
		Restarts:              2,
		Conflicts:             5,
		ConflictsSinceRestart: 1,
		Iterations:            11,
	}
	out := s.String()
	for _, want := range []string{"decisions", "3", "propagations", "7", "restarts", "2", "conflicts", "5", "iterations", "11"} {
		require.Contains(t, out, want)
	}
}

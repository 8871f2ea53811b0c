package dpll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsSatisfyingAssignment(t *testing.T) {
	s := buildSolver(t, 2, [][]int{{1, 2}, {-1, 2}}, nil)
	require.True(t, Validate(s.formula, []bool{false, false, true}))
}

func TestValidateRejectsFalsifyingAssignment(t *testing.T) {
	s := buildSolver(t, 2, [][]int{{1, 2}}, nil)
	require.False(t, Validate(s.formula, []bool{false, false, false}))
}

func TestValidateAgreesWithSolve(t *testing.T) {
	s := buildSolver(t, 3, [][]int{{1, 2}, {-1, 3}, {-2, -3}}, nil)
	sol := s.Solve()
	require.Equal(t, SATISFIABLE, sol.Result)
	require.True(t, Validate(s.formula, sol.Assignment))
}

package dpll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstUnassignedPicksSmallestIndex(t *testing.T) {
	s := buildSolver(t, 3, [][]int{{1, 2, 3}}, nil)
	require.NoError(t, s.formula.assign(1, assnTrue))
	v, ok := s.firstUnassigned()
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestFirstUnassignedNoneLeft(t *testing.T) {
	s := buildSolver(t, 1, [][]int{{1}}, nil)
	require.NoError(t, s.formula.assign(1, assnTrue))
	_, ok := s.firstUnassigned()
	require.False(t, ok)
}

func TestMostFrequentPicksHighestLiveFrequency(t *testing.T) {
	// Variable 1 appears in 3 live clauses, variable 2 in 2, variable 3 in 1.
	s := buildSolver(t, 3, [][]int{{1, 2}, {1, 3}, {1, -2}}, nil)
	v, ok := s.mostFrequent()
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestMostFrequentSkipsSatisfiedClauses(t *testing.T) {
	s := buildSolver(t, 2, [][]int{{1, 2}, {2}}, nil)
	require.NoError(t, s.formula.assign(2, assnTrue))
	// Both clauses are now satisfied and thus not live; variable 1 has
	// frequency 0, so it is still the only unassigned candidate returned.
	v, ok := s.mostFrequent()
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestJeroslowWangPrefersShorterClauses(t *testing.T) {
	// Variables 1 and 2 appear only in a 2-literal clause (weight 1/4, tied,
	// broken toward the smaller index); variables 3-6 appear only in a
	// 4-literal clause (weight 1/16): 1 must win.
	s := buildSolver(t, 6, [][]int{{1, -2}, {3, 4, 5, 6}}, nil)
	v, ok := s.jeroslowWang()
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestJeroslowWangNoUnassignedVariables(t *testing.T) {
	s := buildSolver(t, 1, [][]int{{1}}, nil)
	require.NoError(t, s.formula.assign(1, assnTrue))
	_, ok := s.jeroslowWang()
	require.False(t, ok)
}

func TestRandomUnassignedIsDeterministicForASeed(t *testing.T) {
	build := func() *Solver {
		return buildSolver(t, 5, [][]int{{1, 2, 3, 4, 5}}, func(o *Options) {
			o.Strategy = StrategyRandom
			o.Seed = 7
		})
	}
	s1, s2 := build(), build()
	var picks1, picks2 []int
	for i := 0; i < 4; i++ {
		v, ok := s1.randomUnassigned()
		require.True(t, ok)
		picks1 = append(picks1, v)
		v2, ok2 := s2.randomUnassigned()
		require.True(t, ok2)
		picks2 = append(picks2, v2)
	}
	require.Equal(t, picks1, picks2, "same seed must produce the same pick sequence")
}

func TestRandomUnassignedEmptyCandidateSet(t *testing.T) {
	s := buildSolver(t, 1, [][]int{{1}}, func(o *Options) { o.Strategy = StrategyRandom })
	require.NoError(t, s.formula.assign(1, assnTrue))
	_, ok := s.randomUnassigned()
	require.False(t, ok)
}

func TestParseStrategyRoundTrip(t *testing.T) {
	for _, want := range []Strategy{StrategyFirst, StrategyMostFrequent, StrategyJeroslowWang, StrategyRandom} {
		got, ok := ParseStrategy(want.String())
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	_, ok := ParseStrategy("bogus")
	require.False(t, ok)
}

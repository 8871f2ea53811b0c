// Package dpll implements a DPLL (Davis-Putnam-Logemann-Loveland) boolean
// satisfiability solver over CNF formulas: unit propagation, pure-literal
// elimination, four branching heuristics, and chronological backtracking
// with a resource-bounded outer loop. It is instructional in scope — no
// clause learning, no watched literals, no incremental solving, no
// parallel search.
package dpll

import (
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog"
)

// Solver drives the DPLL search over a single Formula. A Solver owns its
// decision stack and auxiliary buffers; the Formula it was constructed
// with is borrowed for the duration of Solve and may be reused by the
// caller afterward (e.g. to inspect CompletedAssignment).
//
// The driver loop has six states (check-sat, check-conflict, propagate,
// pure-literal, branch, restart); there are no watched literals and no
// separate BCP data structure, so every propagation pass is a full scan of
// the clause set.
type Solver struct {
	formula *Formula
	opts    Options
	stack   *decisionStack
	rng     *lcg32
	logger  zerolog.Logger

	triedBoth []bool
	stats     Stats
	startedAt time.Time
	fatal     error
}

// Option configures a Solver at construction time, beyond the Options
// struct (which governs search behavior). Currently only logging.
type Option func(*Solver)

// WithLogger attaches a zerolog.Logger for debug-level tracing of
// decisions, propagations, and backtracks. The default is zerolog.Nop():
// library use is silent unless a logger is supplied.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// NewSolver constructs a Solver for formula using opts (zero-valued fields
// resolved to their documented defaults).
func NewSolver(formula *Formula, opts Options, options ...Option) *Solver {
	opts = opts.normalize()
	s := &Solver{
		formula:   formula,
		opts:      opts,
		stack:     newDecisionStack(),
		rng:       newLCG32(opts.Seed),
		logger:    zerolog.Nop(),
		triedBoth: make([]bool, formula.NumVars+1),
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// Solve runs the DPLL search to completion or until a resource limit is
// hit, cycling through six states:
//
//	CHECK_SAT → CHECK_CONFLICT → PROPAGATE → PURE → BRANCH → RESTART
//
// preceded by an alternating pure-literal/unit-propagation preprocessing
// pass.
func (s *Solver) Solve() Solution {
	s.startedAt = time.Now()
	s.stack.reset()
	for i := range s.triedBoth {
		s.triedBoth[i] = false
	}

	if res, done := s.preprocess(); done {
		return s.finish(res)
	}

	for {
		s.stats.Iterations++
		guard := s.enterIteration()

		if s.fatal != nil {
			return s.finish(ERROR)
		}

		if s.formula.Satisfied() {
			return s.finish(SATISFIABLE)
		}

		if s.formula.HasConflict() {
			if !s.backtrack() {
				if s.fatal != nil {
					return s.finish(ERROR)
				}
				return s.finish(UNSATISFIABLE)
			}
			continue
		}

		if res, stop := s.checkTermination(); stop {
			return s.finish(res)
		}

		if s.opts.EnablePropagation {
			s.propagate()
			if s.formula.HasConflict() {
				if !s.backtrack() {
					return s.finish(UNSATISFIABLE)
				}
				continue
			}
		}

		if s.opts.EnablePureLiteral {
			s.pureLiteral()
			if s.formula.HasConflict() {
				if !s.backtrack() {
					return s.finish(UNSATISFIABLE)
				}
				continue
			}
		}

		v, ok := s.chooseBranchVar()
		if !ok {
			if s.formula.Satisfied() {
				return s.finish(SATISFIABLE)
			}
			return s.finish(UNSATISFIABLE)
		}
		if err := s.formula.assign(v, assnTrue); err != nil {
			s.fatal = err
			continue
		}
		s.stack.push(stackEntry{variable: v, value: assnTrue, isDecision: true})
		s.stats.Decisions++
		s.logAssignment("decide", v, assnTrue)

		if s.opts.EnableRestarts && s.stats.ConflictsSinceRestart >= int64(s.opts.RestartThreshold) {
			s.restart()
		}

		if guard.noProgress(s) {
			return s.finish(UNKNOWN)
		}
	}
}

// preprocess alternates pure-literal elimination and unit propagation
// until a pass changes nothing. Returns a terminal Result if the formula
// resolves during preprocessing.
func (s *Solver) preprocess() (Result, bool) {
	for {
		before := s.stack.len()
		if s.opts.EnablePureLiteral {
			s.pureLiteral()
		}
		if s.formula.HasConflict() {
			return UNSATISFIABLE, true
		}
		if s.opts.EnablePropagation {
			s.propagate()
		}
		if s.formula.HasConflict() {
			return UNSATISFIABLE, true
		}
		if s.formula.Satisfied() {
			return SATISFIABLE, true
		}
		if s.stack.len() == before {
			return 0, false
		}
	}
}

// restart undoes every entry with decision level > 0: a full restart back
// to root. There is no learned clause database to preserve across a
// restart (no clause learning in this solver), so a restart is just "try
// the heuristics again from nothing."
func (s *Solver) restart() {
	for {
		e, ok := s.stack.top()
		if !ok || e.decisionLevel == 0 {
			break
		}
		s.stack.pop()
		s.formula.unassign(e.variable)
		if e.isDecision {
			s.triedBoth[e.variable] = false
		}
	}
	s.stats.Restarts++
	s.stats.ConflictsSinceRestart = 0
}

func (s *Solver) finish(r Result) Solution {
	sol := Solution{Result: r, Stats: s.stats}
	if r == SATISFIABLE {
		completed := s.formula.CompletedAssignment()
		assignment := make([]bool, len(completed))
		for v := 1; v < len(completed); v++ {
			assignment[v] = completed[v] == assnTrue
		}
		sol.Assignment = assignment
	}
	s.logger.Debug().Str("result", r.String()).
		Int64("decisions", s.stats.Decisions).
		Int64("propagations", s.stats.Propagations).
		Msg("solve finished")
	return sol
}

func (s *Solver) logAssignment(op string, v int, val assnVal) {
	if s.logger.GetLevel() > zerolog.DebugLevel {
		return
	}
	s.logger.Debug().
		Str("op", op).
		Int("var", v).
		Str("value", val.String()).
		Uint32("level", s.stack.level).
		Str("stack", pretty.Sprint(s.stack.entries)).
		Msg("assignment")
}

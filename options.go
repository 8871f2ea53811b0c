package dpll

import "time"

// Default resource caps. A zero passed for Timeout or MaxDecisions is
// resolved as "use the default cap," not "unlimited" — see DESIGN.md for
// the rationale.
const (
	DefaultTimeout      = 5 * time.Second
	DefaultMaxDecisions = 1000

	// defaultRestartThreshold bounds conflicts-since-restart before a
	// restart is triggered, when restarts are enabled.
	defaultRestartThreshold = 1000

	// maxIterations is the internal safety-net iteration cap (§4.7): an
	// absolute ceiling independent of the timeout, to bound pathological
	// runs even under a clock that never fires (e.g. in a sandboxed test).
	maxIterations = 50_000_000
)

// Options configures a Solver. The zero value is not meaningful on its
// own: use NewOptions for a populated default configuration.
type Options struct {
	// Strategy selects the branching heuristic. Library default (via
	// NewOptions) is Jeroslow-Wang; the CLI overrides this to first-
	// unassigned, a deliberate divergence mirrored from the source.
	Strategy Strategy

	// Timeout bounds wall-clock search time. Zero means "use
	// DefaultTimeout".
	Timeout time.Duration

	// MaxDecisions bounds the number of decisions taken. Zero means "use
	// DefaultMaxDecisions".
	MaxDecisions int

	// EnablePropagation/EnablePureLiteral gate the PROPAGATE/PURE driver
	// states. Both default to true; disabling either is a debugging/
	// teaching knob; an implementation with both disabled degenerates to
	// naive backtracking search.
	EnablePropagation bool
	EnablePureLiteral bool

	// EnableRestarts gates the RESTART driver state.
	EnableRestarts   bool
	RestartThreshold int

	// Seed seeds the random branching heuristic's LCG. Irrelevant unless
	// Strategy is StrategyRandom.
	Seed uint32

	// Strict records the DIMACS parse mode (see internal/dimacs): reject
	// empty clauses and enforce the declared clause count exactly. The
	// solver does not read it, and cmd/dpllsat always parses strictly
	// regardless of this field.
	Strict bool
}

// NewOptions returns the library-default configuration: Jeroslow-Wang
// strategy, default timeout and decision cap, propagation and pure-literal
// elimination enabled, restarts disabled, strict parsing.
func NewOptions() Options {
	return Options{
		Strategy:          StrategyJeroslowWang,
		Timeout:           DefaultTimeout,
		MaxDecisions:      DefaultMaxDecisions,
		EnablePropagation: true,
		EnablePureLiteral: true,
		EnableRestarts:    false,
		RestartThreshold:  defaultRestartThreshold,
		Strict:            true,
	}
}

// normalize resolves zero-valued fields to their documented defaults.
func (o Options) normalize() Options {
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxDecisions == 0 {
		o.MaxDecisions = DefaultMaxDecisions
	}
	if o.RestartThreshold == 0 {
		o.RestartThreshold = defaultRestartThreshold
	}
	return o
}

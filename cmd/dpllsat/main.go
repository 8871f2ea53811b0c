// Command dpllsat is the CLI surface for the dpll solver: it reads a
// DIMACS CNF file, runs the DPLL search, and reports SATISFIABLE /
// UNSATISFIABLE / UNKNOWN (with TIMEOUT folded into UNKNOWN at this
// surface).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopherdpll/dpll"
	"github.com/gopherdpll/dpll/internal/dimacs"
)

// args is the CLI surface. go-arg derives both the short/long flag pairs
// and DPLLSAT_-prefixed environment variables from the struct tags,
// folding flag parsing and env-based configuration into one declaration.
type args struct {
	Input string `arg:"positional,required" help:"DIMACS CNF input file"`

	Verbose    bool   `arg:"-v,--verbose,env:DPLLSAT_VERBOSE" help:"enable debug logging"`
	Assignment bool   `arg:"-a,--assignment" help:"print a human-readable assignment and validate it"`
	Stats      bool   `arg:"-s,--stats" help:"print solver counters"`
	Timeout    int    `arg:"-t,--timeout,env:DPLLSAT_TIMEOUT" help:"timeout in seconds (0 = default cap)"`
	Decisions  int    `arg:"-d,--decisions,env:DPLLSAT_DECISIONS" help:"max decisions (0 = default cap)"`
	Strategy   string `arg:"--strategy,env:DPLLSAT_STRATEGY" default:"first" help:"branching heuristic: first, frequent, jw, random"`
}

func (args) Description() string {
	return "dpllsat: an instructional DPLL SAT solver for DIMACS CNF input."
}

func main() {
	os.Exit(run())
}

func run() int {
	var a args
	parser, err := arg.NewParser(arg.Config{}, &a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := parser.Parse(os.Args[1:]); err != nil {
		if err == arg.ErrHelp {
			parser.WriteHelp(os.Stdout)
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		parser.WriteUsage(os.Stderr)
		return 1
	}

	logger := newLogger(a.Verbose)

	strategy, ok := dpll.ParseStrategy(a.Strategy)
	if !ok {
		logger.Error().Str("strategy", a.Strategy).Msg("unknown strategy")
		return 1
	}

	f, err := os.Open(a.Input)
	if err != nil {
		logger.Error().Err(err).Str("file", a.Input).Msg("cannot open input")
		return 1
	}
	defer f.Close()

	rawClauses, problem, err := dimacs.Parse(f, true)
	if err != nil {
		logger.Error().Err(err).Msg("parse error")
		return 1
	}

	formula, err := buildFormula(rawClauses, problem)
	if err != nil {
		logger.Error().Err(err).Msg("cannot build formula")
		return 1
	}

	opts := dpll.NewOptions()
	opts.Strategy = strategy
	if a.Timeout > 0 {
		opts.Timeout = time.Duration(a.Timeout) * time.Second
	}
	if a.Decisions > 0 {
		opts.MaxDecisions = a.Decisions
	}

	solver := dpll.NewSolver(formula, opts, dpll.WithLogger(logger))
	solution := solver.Solve()

	fmt.Println("s " + resultLine(solution.Result))

	switch solution.Result {
	case dpll.SATISFIABLE:
		for v := 1; v < len(solution.Assignment); v++ {
			bit := 0
			if solution.Assignment[v] {
				bit = 1
			}
			fmt.Printf("%d = %d\n", v, bit)
		}
		if a.Assignment {
			printAssignmentTable(solution.Assignment)
			valid := dpll.Validate(formula, solution.Assignment)
			fmt.Fprintf(os.Stderr, "assignment valid: %v\n", valid)
		}
	}

	if a.Stats {
		printStats(solution.Stats)
	}

	return solution.Result.ExitCode()
}

// resultLine folds TIMEOUT into UNKNOWN at the output interface.
func resultLine(r dpll.Result) string {
	switch r {
	case dpll.TIMEOUT:
		return "UNKNOWN"
	default:
		return r.String()
	}
}

func buildFormula(rawClauses [][]int, problem dimacs.Problem) (*dpll.Formula, error) {
	numVars := problem.Vars
	if numVars == 0 {
		for _, cls := range rawClauses {
			for _, lit := range cls {
				v := lit
				if v < 0 {
					v = -v
				}
				if v > numVars {
					numVars = v
				}
			}
		}
	}
	formula := dpll.NewFormula(numVars)
	for _, cls := range rawClauses {
		lits := make([]dpll.Literal, len(cls))
		for i, v := range cls {
			lits[i] = dpll.Literal(v)
		}
		clause, ok, err := dpll.NewClause(lits, true)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Tautology: dropped silently.
			continue
		}
		if err := formula.AddClause(clause); err != nil {
			return nil, err
		}
	}
	return formula, nil
}

func printStats(s dpll.Stats) {
	fmt.Fprintln(os.Stderr, s.String())
}

// printAssignmentTable writes a per-variable TRUE/FALSE table to stderr, a
// more readable companion to the unconditional "<v> = <bit>" stdout lines.
func printAssignmentTable(assignment []bool) {
	fmt.Fprintln(os.Stderr, "=== variable assignment ===")
	for v := 1; v < len(assignment); v++ {
		value := "FALSE"
		if assignment[v] {
			value = "TRUE"
		}
		fmt.Fprintf(os.Stderr, "%6d = %s\n", v, value)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

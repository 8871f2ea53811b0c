// Package dimacs parses and writes the DIMACS CNF text format. It never
// constructs a dpll.Formula directly: it hands back plain [][]int clauses,
// leaving formula construction — and tautology filtering — to the caller.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineLength bounds a single DIMACS line; exceeding it makes Parse fail
// in both strict and permissive mode.
const maxLineLength = 1 << 20

// ParseError reports a DIMACS parse failure with the 1-based source line
// it occurred on, so the CLI can report "line N: ...".
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// Problem is the parsed preamble: the declared variable and clause counts.
type Problem struct {
	Vars    int
	Clauses int
}

// Parse reads DIMACS CNF text from r. In strict mode, the problem line is
// required, N must be > 0, M must be ≥ 0, every clause must be terminated
// by 0, no clause may be empty, and the parsed clause count must equal M
// exactly. In permissive mode the problem line may be absent, clause-count
// mismatches are tolerated, and empty clauses are silently dropped rather
// than rejected.
func Parse(r io.Reader, strict bool) ([][]int, Problem, error) {
	var problem Problem
	var clauses [][]int
	var clause []int
	haveProblemLine := false
	sawAnyLine := false

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := s.Text()
		if len(line) == 0 {
			continue
		}
		sawAnyLine = true
		if line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 || len(clause) > 0 {
				return nil, problem, &ParseError{lineNo, "problem line appears after clauses"}
			}
			if haveProblemLine {
				return nil, problem, &ParseError{lineNo, "multiple problem lines"}
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, problem, &ParseError{lineNo, fmt.Sprintf("malformed problem line %q", line)}
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, problem, &ParseError{lineNo, fmt.Sprintf("malformed variable count: %s", err)}
			}
			m, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, problem, &ParseError{lineNo, fmt.Sprintf("malformed clause count: %s", err)}
			}
			if n <= 0 {
				if strict {
					return nil, problem, &ParseError{lineNo, fmt.Sprintf("invalid variable count %d: must be > 0", n)}
				}
			}
			if m < 0 {
				return nil, problem, &ParseError{lineNo, fmt.Sprintf("invalid clause count %d", m)}
			}
			problem.Vars, problem.Clauses = n, m
			haveProblemLine = true
			continue
		}
		if strict && !haveProblemLine {
			return nil, problem, &ParseError{lineNo, "clause line appears before problem line"}
		}
		for _, field := range strings.Fields(line) {
			lit, err := strconv.Atoi(field)
			if err != nil {
				return nil, problem, &ParseError{lineNo, fmt.Sprintf("invalid literal %q: %s", field, err)}
			}
			if lit == 0 {
				if len(clause) == 0 {
					if strict {
						return nil, problem, &ParseError{lineNo, "empty clause"}
					}
					// Permissive mode: drop silently, the core never
					// sees an empty clause.
					continue
				}
				clauses = append(clauses, clause)
				clause = nil
				continue
			}
			if problem.Vars > 0 {
				v := lit
				if v < 0 {
					v = -v
				}
				if v > problem.Vars {
					return nil, problem, &ParseError{lineNo, fmt.Sprintf("literal %d exceeds declared variable count %d", lit, problem.Vars)}
				}
			}
			clause = append(clause, lit)
		}
	}
	if err := s.Err(); err != nil {
		return nil, problem, err
	}

	if !sawAnyLine {
		return nil, problem, &ParseError{0, "empty file"}
	}
	if len(clause) > 0 {
		if strict {
			return nil, problem, &ParseError{lineNo, "clause not terminated by 0"}
		}
		clauses = append(clauses, clause)
	}
	if strict && !haveProblemLine {
		return nil, problem, &ParseError{0, "missing problem line"}
	}

	if haveProblemLine && strict && len(clauses) != problem.Clauses {
		return nil, problem, &ParseError{0, fmt.Sprintf("problem line declares %d clauses, but %d were parsed", problem.Clauses, len(clauses))}
	}
	return clauses, problem, nil
}

// Write emits clauses (each a slice of non-zero signed ints) in DIMACS CNF
// format, preceded by a problem line declaring numVars and len(clauses).
// Pairs with Parse: writing then parsing a clause set must reproduce the
// same multiset of literal-sets.
func Write(w io.Writer, clauses [][]int, numVars int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(clauses)); err != nil {
		return err
	}
	for _, c := range clauses {
		var b strings.Builder
		for _, lit := range c {
			fmt.Fprintf(&b, "%d ", lit)
		}
		b.WriteString("0")
		if _, err := fmt.Fprintln(bw, b.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

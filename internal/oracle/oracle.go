// Package oracle provides independent satisfiability checks used only by
// tests: a brute-force truth-table search for small instances, and a
// cross-check against github.com/go-air/gini, a real production-grade CDCL
// solver, for instances too large to brute force quickly. Nothing in the
// cdcl package's solving path depends on this package — it exists purely to
// give the property tests an independent oracle, something other than the
// solver under test to compare against.
package oracle

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Clause is a disjunction of signed DIMACS-style integers: positive for the
// variable, negative for its negation, 1-indexed. It mirrors gini's own
// literal encoding, so both oracle paths can share one clause representation.
type Clause []int

// BruteForce reports whether the given clauses over numVars variables
// (1-indexed) are satisfiable, by trying every total assignment. Only
// suitable for small numVars — it's exponential by construction, which is
// the point: it makes no assumption shared with the solver under test.
func BruteForce(numVars int, clauses []Clause) bool {
	assignment := make([]bool, numVars+1)
	return bruteForce(assignment, 1, numVars, clauses)
}

func bruteForce(assignment []bool, v, numVars int, clauses []Clause) bool {
	if v > numVars {
		return satisfies(assignment, clauses)
	}
	assignment[v] = false
	if bruteForce(assignment, v+1, numVars, clauses) {
		return true
	}
	assignment[v] = true
	return bruteForce(assignment, v+1, numVars, clauses)
}

func satisfies(assignment []bool, clauses []Clause) bool {
clauseLoop:
	for _, clause := range clauses {
		for _, lit := range clause {
			v := lit
			want := true
			if v < 0 {
				v = -v
				want = false
			}
			if assignment[v] == want {
				continue clauseLoop
			}
		}
		return false
	}
	return true
}

// Gini reports whether the given clauses over numVars variables are
// satisfiable, using github.com/go-air/gini as a second, independently
// implemented CDCL solver.
func Gini(numVars int, clauses []Clause) bool {
	g := gini.New()
	for _, clause := range clauses {
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(z.LitNull)
	}
	return g.Solve() == 1
}

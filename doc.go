// Package cdcl implements a SAT solver using the Conflict-Driven Clause
// Learning (CDCL) algorithm: interleaved unit propagation, decision,
// first-unique-implication-point (1-UIP) conflict analysis, clause learning,
// and non-chronological backjumping.
//
// The package deliberately does not implement a watched-literal scheme,
// VSIDS-style activity heuristics, restarts, or clause-database reduction.
// Clause evaluation is a plain linear scan (see clause.go); decisions always
// pick the first unassigned variable (see decide.go). These are simplicity
// choices, not oversights — see the package's accompanying design notes.
//
// Parsing and printing the line-oriented CNF format this package's CLI uses
// lives in the sibling cnf package; this package only knows about variables,
// literals, and clauses.
package cdcl

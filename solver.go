package cdcl

import "github.com/sirupsen/logrus"

// Stats are informational counters about a solve. They carry no semantic
// weight for the verdict and may grow over time; callers shouldn't branch
// on anything beyond reading them for diagnostics.
type Stats struct {
	Decisions     int64
	Propagations  int64
	Conflicts     int64
	LearnedClause int64
	Backjumps     int64
}

// Solver holds all mutable state for a single CDCL solve: the clause
// database (original clauses plus any learned along the way), the dense
// assignment map, the layered trail, and the implication graph. It is owned
// exclusively by its caller; nothing inside is safe to share across
// goroutines, and the solver never spawns one itself.
type Solver struct {
	clauses []*Clause
	assigns assignmentMap
	trail   *trail
	graph   implicationGraph

	stats  Stats
	logger logrus.FieldLogger
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger overrides the default logger (logrus.StandardLogger()) used
// for search diagnostics. Every solve emits at Debug level only; nothing
// about the solver's behavior depends on whether logging is enabled.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Solver) { s.logger = logger }
}

// New builds a solver for numVars variables (indices [0, numVars)) and the
// given initial clauses. Clauses are appended over the course of solving
// (learned clauses) but never removed.
func New(numVars int, clauses []*Clause, opts ...Option) *Solver {
	s := &Solver{
		clauses: append([]*Clause(nil), clauses...),
		assigns: newAssignmentMap(numVars),
		trail:   newTrail(),
		graph:   newImplicationGraph(numVars),
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve runs the propagate-decide-analyze-learn-backjump loop to
// completion and reports whether the formula is satisfiable.
func (s *Solver) Solve() bool {
	for {
		res := s.propagate()
		if res.conflict {
			if s.trail.levels() == 0 {
				s.logger.WithField("conflicts", s.stats.Conflicts).Debug("cdcl: conflict at level 0, unsat")
				return false
			}

			s.stats.Conflicts++
			learned, target := s.analyze(res.reasons)
			s.clauses = append(s.clauses, learned)
			s.stats.LearnedClause++

			s.logger.WithFields(logrus.Fields{
				"learned_size": len(learned.lits),
				"backjump_to":  target,
			}).Debug("cdcl: learned clause, backjumping")

			s.backjump(target)
			continue
		}

		lit, ok := s.decide()
		if !ok {
			s.logger.WithField("decisions", s.stats.Decisions).Debug("cdcl: no variables left, sat")
			return true
		}
		s.assume(lit)
		s.logger.WithField("literal", lit.String()).Debug("cdcl: decided")
	}
}

// Value reports the current assignment of variable v: True, False, or
// Unset. With the first-unset decision policy, Unset can only be observed
// after Solve returns false (UNSAT) or before Solve has been called; a SAT
// result always assigns every variable. The accessor is kept general
// (rather than assuming a fully-assigned model) so a future decision policy
// that stops early can still be represented faithfully.
func (s *Solver) Value(v Var) Value {
	return s.assigns.valueOfVar(v)
}

// NumVars reports the number of variables the solver was constructed with.
func (s *Solver) NumVars() int {
	return len(s.assigns)
}

// Stats returns a snapshot of the solve's diagnostic counters.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Solve is a convenience wrapper around New and (*Solver).Solve for callers
// that don't need the solver afterward beyond reading the assignment.
func Solve(numVars int, clauses []*Clause, opts ...Option) (sat bool, values []Value, stats Stats) {
	s := New(numVars, clauses, opts...)
	sat = s.Solve()
	values = make([]Value, numVars)
	for v := 0; v < numVars; v++ {
		values[v] = s.Value(Var(v))
	}
	return sat, values, s.Stats()
}

package cdcl

// propagateOutcome is the result of running unit propagation to a fixpoint.
type propagateOutcome struct {
	conflict bool
	reasons  []Lit // meaningful when conflict is true
}

// propagate runs local clause propagation to a fixpoint: it keeps scanning
// every clause until either some clause conflicts (returned immediately) or
// a full pass over all clauses forces nothing new. Each forced literal is
// installed atomically — assignment set, implication-graph derivation node
// recorded at the current level, literal pushed onto the trail's top level
// — before the scan continues.
//
// Clause order is original clauses first, then learned clauses in the
// order they were learned; this makes which conflict gets reported first
// (when more than one clause conflicts in the same pass) deterministic and
// reproducible, though nothing about correctness depends on it.
func (s *Solver) propagate() propagateOutcome {
	for {
		progressed := false
		level := s.trail.levels()

		for _, c := range s.clauses {
			res := c.propagate(s.assigns)
			switch res.outcome {
			case propConflict:
				return propagateOutcome{conflict: true, reasons: res.reasons}
			case propUnit:
				v := res.forced.Var()
				s.assigns.setLit(res.forced)
				s.graph.recordDerivation(v, level, res.reasons)
				s.trail.push(res.forced)
				s.stats.Propagations++
				progressed = true
			}
		}

		if !progressed {
			return propagateOutcome{}
		}
	}
}

package cdcl

// decide returns the first unassigned variable, as a positive literal. This
// is the minimal correct decision policy: no freedom beyond determinism is
// required, and better heuristics (kept behind the same signature) are free
// to replace it so long as completeness is preserved. The second return
// value is false once every variable is assigned.
func (s *Solver) decide() (Lit, bool) {
	for v := Var(0); int(v) < len(s.assigns); v++ {
		if s.assigns.valueOfVar(v) == Unset {
			return NewLit(v, false), true
		}
	}
	return 0, false
}

// assume opens a new decision level for lit: the level is recorded, the
// variable is assigned so lit holds, a Decision node is recorded in the
// implication graph, and lit is pushed as the level's first (and so far
// only) entry.
func (s *Solver) assume(lit Lit) {
	s.trail.openLevel()
	level := s.trail.levels()
	s.assigns.setLit(lit)
	s.graph.recordDecision(lit.Var(), level)
	s.trail.push(lit)
	s.stats.Decisions++
}

// backjump undoes assignments down to target level, which must be strictly
// less than the current level count. Every literal assigned at a level
// above target has its assignment and implication-graph entry cleared;
// everything at or below target is untouched.
func (s *Solver) backjump(target int) {
	for s.trail.levels() > target {
		for _, lit := range s.trail.popLevel() {
			s.assigns.clear(lit.Var())
			s.graph.clear(lit.Var())
		}
	}
	s.stats.Backjumps++
}

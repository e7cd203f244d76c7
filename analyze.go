package cdcl

// analyze walks the implication graph backward from a conflict's reasons to
// the first unique implication point (1-UIP) of the current decision level,
// producing a learned clause and the level to backjump to.
//
// This is a direct translation of the reference implementation's
// analyse_conflict: maintain a frontier of variables seen so far, a running
// result_body of literals from earlier levels (each the negation of the
// seen reason literal), a count of how many frontier variables sit at the
// current level, and reset_level, the highest level among result_body's
// literals. Walk the current level's trail backward; each time the walk
// passes a frontier variable, that's the pivot for this round. Once no
// frontier variables remain at the current level, the pivot is the 1-UIP.
//
// Panics (never user-visible; see the package's error handling notes) guard
// the structural invariants: every literal reached here must have a graph
// entry, and the walk must not run off the end of the trail before finding
// a UIP.
func (s *Solver) analyze(cut []Lit) (*Clause, int) {
	curLevel := s.trail.levels()
	frontier := make([]bool, len(s.graph))
	var resultBody []Lit
	curLevelSize := 0
	resetLevel := 0

	top := s.trail.top()
	next := len(top) - 1

	for {
		for _, lit := range cut {
			v := lit.Var()
			if frontier[v] {
				continue
			}
			frontier[v] = true

			node := s.graph.node(v)
			if node == nil {
				panic("cdcl: conflict analysis found a literal with no implication-graph entry")
			}
			switch {
			case node.level == curLevel:
				curLevelSize++
			case node.level > 0:
				resultBody = append(resultBody, lit.Negate())
				if node.level > resetLevel {
					resetLevel = node.level
				}
			default:
				// Level 0: unconditionally true, contributes nothing.
			}
		}

		var pivot Lit
		foundPivot := false
		for next >= 0 {
			lit := top[next]
			next--
			if frontier[lit.Var()] {
				frontier[lit.Var()] = false
				curLevelSize--
				pivot = lit
				foundPivot = true
				break
			}
		}
		if !foundPivot {
			panic("cdcl: conflict analysis exhausted the current level without finding a UIP")
		}

		if curLevelSize == 0 {
			resultBody = append(resultBody, pivot.Negate())
			return NewClause(resultBody), resetLevel
		}

		node := s.graph.node(pivot.Var())
		if node == nil {
			panic("cdcl: conflict analysis pivot has no implication-graph entry")
		}
		if node.kind == kindDecision {
			panic("cdcl: conflict analysis reached a decision node before the current level's frontier was exhausted")
		}
		cut = node.inputs
	}
}

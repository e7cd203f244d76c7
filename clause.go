package cdcl

// Clause is an ordered disjunction of literals. Duplicate or tautological
// literals aren't normalized here — that's the producing parser's job, not
// the core's (see package cnf).
type Clause struct {
	lits []Lit
}

// NewClause builds a clause from the given literals. The slice is not
// copied defensively by the caller's convention in this package — pass a
// slice you don't intend to mutate afterward.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// Lits returns the clause's literals in order.
func (c *Clause) Lits() []Lit { return c.lits }

// propOutcome classifies the result of scanning one clause against the
// current assignment.
type propOutcome int8

const (
	// propInert covers both a satisfied clause (at least one true literal)
	// and a clause with two or more unassigned literals and no conflict yet
	// — in both cases the clause currently yields no new information.
	propInert propOutcome = iota
	propUnit
	propConflict
)

// propResult is the outcome of evaluating one clause against an assignment.
type propResult struct {
	outcome propOutcome
	forced  Lit   // set when outcome == propUnit: the single unassigned literal
	reasons []Lit // set when outcome == propUnit or propConflict
}

// propagate classifies c against the current assignment:
//
//   - satisfied (at least one true literal): inert.
//   - unit (exactly one unassigned literal, all others false): the unit
//     literal is returned as forced, along with the reasons — the currently
//     true literals (complement of each falsified clause literal) that made
//     the clause unit.
//   - conflict (all literals false): the reasons are the complement of
//     every clause literal.
//   - anything else (two or more unassigned literals, none yet true): inert.
//
// This is a plain linear scan, not a watched-literal scheme: the first pass
// determines the category, and a second pass collects reasons only when the
// clause turned out to be unit or a conflict.
func (c *Clause) propagate(a assignmentMap) propResult {
	var unit Lit
	haveUnit := false

	for _, lit := range c.lits {
		switch a.valueOfLit(lit) {
		case True:
			return propResult{outcome: propInert}
		case Unset:
			if haveUnit {
				return propResult{outcome: propInert}
			}
			haveUnit = true
			unit = lit
		case False:
			// Falsified; keep scanning.
		}
	}

	if haveUnit {
		reasons := make([]Lit, 0, len(c.lits)-1)
		for _, lit := range c.lits {
			if a.valueOfLit(lit) == False {
				reasons = append(reasons, lit.Negate())
			}
		}
		return propResult{outcome: propUnit, forced: unit, reasons: reasons}
	}

	// No unassigned literal and none true: every literal is false.
	reasons := make([]Lit, len(c.lits))
	for i, lit := range c.lits {
		reasons[i] = lit.Negate()
	}
	return propResult{outcome: propConflict, reasons: reasons}
}

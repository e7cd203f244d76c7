package cdcl

import "fmt"

// Var is a variable index in the dense range [0, N) fixed at solver
// construction. The solver never coins new variables; they're all supplied
// up front by the caller (in practice, by package cnf's parser).
type Var int32

// Lit is a literal: a variable together with a polarity. The low bit of the
// packed representation is the polarity (0 = positive, 1 = negated) and the
// remaining bits are the variable index — the same packing
// github.com/go-air/gini's z.Lit independently uses for the same reason:
// negation and variable extraction are then a single XOR and shift.
type Lit uint32

// NewLit returns the literal for v with the given polarity. neg == true
// means the negated literal (¬v).
func NewLit(v Var, neg bool) Lit {
	l := Lit(v) << 1
	if neg {
		l |= 1
	}
	return l
}

// Var returns the variable underlying l.
func (l Lit) Var() Var { return Var(l >> 1) }

// Negated reports whether l is the negated form of its variable.
func (l Lit) Negated() bool { return l&1 == 1 }

// Negate returns the complementary literal (¬l).
func (l Lit) Negate() Lit { return l ^ 1 }

func (l Lit) String() string {
	if l.Negated() {
		return fmt.Sprintf("!%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}

// Value is the truth value of a variable or literal: unset, or a concrete
// boolean. It's distinct from a plain bool so "not yet assigned" has its own
// representation instead of being conflated with false.
type Value int8

const (
	Unset Value = iota
	True
	False
)

func (v Value) String() string {
	switch v {
	case True:
		return "1"
	case False:
		return "0"
	default:
		return "_"
	}
}

// flip returns the opposite of a concrete value; Unset flips to itself.
func (v Value) flip() Value {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return Unset
	}
}

// assignmentMap is the dense array indexed by Var described in the data
// model: each slot holds Unset, True, or False, consistent at all times
// (outside the mutation sites in decide.go/propagate.go) with the literals
// recorded on the trail.
type assignmentMap []Value

func newAssignmentMap(numVars int) assignmentMap {
	return make(assignmentMap, numVars)
}

func (a assignmentMap) valueOfVar(v Var) Value {
	return a[v]
}

// valueOfLit reports whether literal l is currently True, False, or Unset,
// accounting for its polarity.
func (a assignmentMap) valueOfLit(l Lit) Value {
	v := a[l.Var()]
	if l.Negated() {
		return v.flip()
	}
	return v
}

func (a assignmentMap) set(v Var, val Value) {
	a[v] = val
}

func (a assignmentMap) clear(v Var) {
	a[v] = Unset
}

// setLit assigns the variable underlying l so that l itself becomes true.
func (a assignmentMap) setLit(l Lit) {
	if l.Negated() {
		a.set(l.Var(), False)
	} else {
		a.set(l.Var(), True)
	}
}

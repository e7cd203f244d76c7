package cdcl_test

import (
	"fmt"

	"github.com/cespare/cdcl"
)

func ExampleSolve() {
	// Problem: (¬x ∨ y) ∧ (¬y ∨ z) ∧ (x ∨ ¬z ∨ y) ∧ y
	// Variables: x=0, y=1, z=2.
	x, y, z := cdcl.Var(0), cdcl.Var(1), cdcl.Var(2)
	clauses := []*cdcl.Clause{
		cdcl.NewClause([]cdcl.Lit{cdcl.NewLit(x, true), cdcl.NewLit(y, false)}),
		cdcl.NewClause([]cdcl.Lit{cdcl.NewLit(y, true), cdcl.NewLit(z, false)}),
		cdcl.NewClause([]cdcl.Lit{cdcl.NewLit(x, false), cdcl.NewLit(z, true), cdcl.NewLit(y, false)}),
		cdcl.NewClause([]cdcl.Lit{cdcl.NewLit(y, false)}),
	}

	sat, values, _ := cdcl.Solve(3, clauses)
	if !sat {
		fmt.Println("not satisfiable")
		return
	}
	fmt.Println("satisfiable:", values)
	// Output: satisfiable: [1 1 1]
}

package cnf

import (
	"fmt"
	"io"

	"github.com/cespare/cdcl"
)

// Write renders p's clauses back out in the same line-oriented format Parse
// reads, one clause per line, using each variable's interned name. Parsing
// and then writing a problem is a semantic identity (up to literal order
// within each clause, which Parse preserves anyway).
func Write(w io.Writer, p *Problem) error {
	for _, c := range p.Clauses {
		lits := c.Lits()
		for i, lit := range lits {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			name := p.Names[lit.Var()]
			if lit.Negated() {
				name = "!" + name
			}
			if _, err := io.WriteString(w, name); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteResult renders a solver's verdict in the line-oriented result format: a
// single "SAT"/"UNSAT" line, followed — when sat is true — by one "<name>
// <v>" line per variable, in Names' order. v is "1" for true, "0" for
// false, "_" for a variable the solver never assigned (only possible with a
// decision policy other than cdcl's default first-unset one).
func WriteResult(w io.Writer, p *Problem, sat bool, value func(cdcl.Var) cdcl.Value) error {
	if !sat {
		_, err := fmt.Fprintln(w, "UNSAT")
		return err
	}
	if _, err := fmt.Fprintln(w, "SAT"); err != nil {
		return err
	}
	for v, name := range p.Names {
		if _, err := fmt.Fprintf(w, "%s %s\n", name, value(cdcl.Var(v))); err != nil {
			return err
		}
	}
	return nil
}

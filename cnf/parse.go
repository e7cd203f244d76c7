// Package cnf implements the line-oriented CNF text format the cdcl solver
// is fed through: one clause per line, whitespace-separated literals,
// '!'-prefixed negation, and variable names interned in first-seen order.
// It also prints a solver's verdict back out in the same vocabulary. None
// of this lives in the core package — the solver only ever sees Vars and
// Lits, never names.
package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/cdcl"
)

// Problem is a parsed CNF instance: the clause list ready to hand to
// cdcl.New, plus the symbol table mapping each variable back to the name it
// was first seen under.
type Problem struct {
	NumVars int
	Clauses []*cdcl.Clause
	Names   []string // Names[v] is the name variable v was interned under
}

// Parse reads one clause per line until end-of-stream or the first empty
// line (an empty line is one with no literals after splitting on
// whitespace). A literal is a bareword, optionally prefixed with '!' for
// negation; the first occurrence of a name allocates a fresh variable,
// numbered in first-seen order starting at 0.
func Parse(r io.Reader) (*Problem, error) {
	names := make(map[string]cdcl.Var)
	var order []string
	var clauses []*cdcl.Clause

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			break
		}

		lits := make([]cdcl.Lit, 0, len(fields))
		for _, field := range fields {
			name := field
			neg := false
			if strings.HasPrefix(field, "!") {
				neg = true
				name = field[1:]
			}
			if name == "" {
				return nil, fmt.Errorf("cnf: empty variable name in %q", line)
			}

			v, ok := names[name]
			if !ok {
				v = cdcl.Var(len(order))
				names[name] = v
				order = append(order, name)
			}
			lits = append(lits, cdcl.NewLit(v, neg))
		}
		clauses = append(clauses, cdcl.NewClause(lits))
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return &Problem{
		NumVars: len(order),
		Clauses: clauses,
		Names:   order,
	}, nil
}

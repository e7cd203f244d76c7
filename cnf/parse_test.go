package cnf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cespare/cdcl"
	"github.com/cespare/cdcl/cnf"
)

func lit(v int, neg bool) cdcl.Lit { return cdcl.NewLit(cdcl.Var(v), neg) }

func TestParse(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		wantNames  []string
		wantClause [][]cdcl.Lit
	}{
		{
			name:      "single variable",
			input:     "a\n",
			wantNames: []string{"a"},
			wantClause: [][]cdcl.Lit{
				{lit(0, false)},
			},
		},
		{
			name:      "negation and reuse",
			input:     "a b\n!a !b\n",
			wantNames: []string{"a", "b"},
			wantClause: [][]cdcl.Lit{
				{lit(0, false), lit(1, false)},
				{lit(0, true), lit(1, true)},
			},
		},
		{
			name:      "stops at blank line",
			input:     "a b\n\nc d\n",
			wantNames: []string{"a", "b"},
			wantClause: [][]cdcl.Lit{
				{lit(0, false), lit(1, false)},
			},
		},
		{
			name:      "names interned in first-seen order",
			input:     "z y\ny z\n",
			wantNames: []string{"z", "y"},
			wantClause: [][]cdcl.Lit{
				{lit(0, false), lit(1, false)},
				{lit(1, false), lit(0, false)},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := cnf.Parse(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(tc.wantNames, p.Names); diff != "" {
				t.Fatalf("Names (-want +got):\n%s", diff)
			}
			if len(p.Clauses) != len(tc.wantClause) {
				t.Fatalf("got %d clauses, want %d", len(p.Clauses), len(tc.wantClause))
			}
			for i, c := range p.Clauses {
				if diff := cmp.Diff(tc.wantClause[i], c.Lits()); diff != "" {
					t.Fatalf("clause %d (-want +got):\n%s", i, diff)
				}
			}
		})
	}
}

func TestParseEmptyNameIsError(t *testing.T) {
	if _, err := cnf.Parse(strings.NewReader("a !\n")); err == nil {
		t.Fatal("expected an error for an empty variable name, got nil")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	const input = "a b\n!a c\n!b !c\n"
	p, err := cnf.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var buf bytes.Buffer
	if err := cnf.Write(&buf, p); err != nil {
		t.Fatalf("Write: %v", err)
	}

	p2, err := cnf.Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("Parse (round trip): %v", err)
	}
	if diff := cmp.Diff(p.Names, p2.Names); diff != "" {
		t.Fatalf("Names changed across round trip (-want +got):\n%s", diff)
	}
	for i := range p.Clauses {
		if diff := cmp.Diff(p.Clauses[i].Lits(), p2.Clauses[i].Lits()); diff != "" {
			t.Fatalf("clause %d changed across round trip (-want +got):\n%s", i, diff)
		}
	}
}

func TestWriteResult(t *testing.T) {
	p, err := cnf.Parse(strings.NewReader("a b\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var buf bytes.Buffer
	values := map[cdcl.Var]cdcl.Value{0: cdcl.False, 1: cdcl.True}
	value := func(v cdcl.Var) cdcl.Value { return values[v] }
	if err := cnf.WriteResult(&buf, p, true, value); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	if want := "SAT\na 0\nb 1\n"; buf.String() != want {
		t.Fatalf("WriteResult = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := cnf.WriteResult(&buf, p, false, value); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	if want := "UNSAT\n"; buf.String() != want {
		t.Fatalf("WriteResult = %q, want %q", buf.String(), want)
	}
}

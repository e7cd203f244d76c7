// Command cdcl reads a CNF problem in the solver's line-oriented format
// from standard input and writes SAT/UNSAT (plus, on SAT, the variable
// assignment) to standard output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cespare/cdcl"
	"github.com/cespare/cdcl/cnf"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cdcl",
		Short: "A CDCL SAT solver",
		Long: `cdcl reads a single CNF problem from standard input, one clause per
line, literals separated by whitespace and negated with a leading '!'. Input
ends at end-of-stream or the first blank line.

It writes the result to standard output: either a line UNSAT, or a line SAT
followed by one "<name> <value>" line per variable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func run(in io.Reader, out io.Writer) error {
	problem, err := cnf.Parse(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	s := cdcl.New(problem.NumVars, problem.Clauses)
	sat := s.Solve()

	return cnf.WriteResult(out, problem, sat, s.Value)
}

package solve

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/limaJavier/graphsat/cmd/exitcode"
	"github.com/limaJavier/graphsat/cmd/solvers"
	"github.com/limaJavier/graphsat/pkg/sat"
)

func NewSolveCommand() *cobra.Command {
	var solverName string

	cmd := &cobra.Command{
		Use:   "solve <path>",
		Short: "Solves a sat problem given in dimacs format",
		Long: `Solves a sat problem given in dimacs format. For instance:
c
c this is a comment
c header: p cnf <number of variable> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
1 2 0
1 -2 0

The answer is printed in SAT-competition format and the process exits with 10 if the
instance is satisfiable or 20 if it is not.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, args[0], solverName)
		},
	}
	cmd.Flags().StringVar(&solverName, "solver", "gini", "SAT solver, "+solvers.Usage())

	return cmd
}

func solve(cmd *cobra.Command, path, solverName string) error {
	solver, err := solvers.New(cmd, solverName)
	if err != nil {
		return err
	}

	instance, err := sat.ReadDIMACSFile(path)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}
	logrus.WithFields(logrus.Fields{
		"file":      path,
		"solver":    solverName,
		"variables": instance.Variables,
		"clauses":   instance.ClauseCount(),
	}).Debug("solving instance")

	solution, err := solver.Solve(instance)
	if err != nil {
		return err
	} else if solution == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "s UNSATISFIABLE")
		return exitcode.Error{Code: exitcode.Unsatisfiable}
	}

	var builder strings.Builder
	builder.WriteString("v")
	for _, literal := range solution {
		fmt.Fprintf(&builder, " %d", literal)
	}
	builder.WriteString(" 0")

	fmt.Fprintln(cmd.OutOrStdout(), "s SATISFIABLE")
	fmt.Fprintln(cmd.OutOrStdout(), builder.String())
	return exitcode.Error{Code: exitcode.Satisfiable}
}

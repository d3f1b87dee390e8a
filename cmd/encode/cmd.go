package encode

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/limaJavier/graphsat/cmd/exitcode"
	"github.com/limaJavier/graphsat/cmd/solvers"
	"github.com/limaJavier/graphsat/pkg/batch"
	"github.com/limaJavier/graphsat/pkg/graph"
	"github.com/limaJavier/graphsat/pkg/model"
)

type options struct {
	graphFile  string
	target     uint64
	out        string
	solver     string
	maxClauses uint64
}

func NewChromaticCommand() *cobra.Command {
	return newEncodeCommand(
		"chromatic",
		"Writes the DIMACS instance asking whether the graph is properly colorable with k colors",
		"colors",
		model.NewChromaticEncoder,
	)
}

func NewCliqueCommand() *cobra.Command {
	return newEncodeCommand(
		"clique",
		"Writes the DIMACS instance asking whether the graph holds a clique of the given size",
		"size",
		model.NewCliqueEncoder,
	)
}

func newEncodeCommand(use, short, targetFlag string, newEncoder func(maxClauses uint64) model.Encoder) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

The graph file holds one edge per line as two whitespace separated vertex ids, e.g.:
0 1
1 2

If --solver is given the instance is also solved and the process exits with 10 if it is
satisfiable or 20 if it is not.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, newEncoder(opts.maxClauses))
		},
	}

	cmd.Flags().StringVarP(&opts.graphFile, "graph", "g", "", "Path to the edge list file")
	cmd.Flags().Uint64VarP(&opts.target, targetFlag, "k", 0, "Target number to decide")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Path of the DIMACS file to write, \"-\" for the standard output; derived from the graph file name if empty")
	cmd.Flags().StringVar(&opts.solver, "solver", "", "SAT solver used to solve the instance, "+solvers.Usage())
	cmd.Flags().Uint64Var(&opts.maxClauses, "max-clauses", 0, "Refuse to encode instances with more clauses than this (0 disables the check)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired(targetFlag)

	return cmd
}

func run(cmd *cobra.Command, opts options, encoder model.Encoder) error {
	edges, err := graph.EdgeListFromFile(opts.graphFile)
	if err != nil {
		return err
	}

	task := batch.Task{Graph: opts.graphFile, Edges: edges, Encoder: encoder, Target: opts.target}
	instance, err := task.Instance()
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = batch.OutputName(opts.graphFile, encoder.Name(), opts.target)
	}
	if out == "-" {
		if err := instance.WriteDIMACS(cmd.OutOrStdout()); err != nil {
			return err
		}
	} else {
		if err := instance.WriteFile(out); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"output":    out,
			"variables": instance.Variables,
			"clauses":   instance.ClauseCount(),
		}).Info("instance written")
	}

	if opts.solver == "" {
		return nil
	}

	solver, err := solvers.New(cmd, opts.solver)
	if err != nil {
		return err
	}
	result, err := task.Solve(instance, solver)
	if err != nil {
		return err
	}

	logger := logrus.WithFields(logrus.Fields{"solver": opts.solver, "duration": result.Duration})
	if result.Status == batch.Unsatisfiable {
		logger.Info("instance is unsatisfiable")
		return exitcode.Error{Code: exitcode.Unsatisfiable}
	}
	logger.Infof("instance is satisfiable, witness: %v", result.Witness)
	if out != "-" {
		fmt.Fprintln(cmd.OutOrStdout(), result.Witness)
	}
	return exitcode.Error{Code: exitcode.Satisfiable}
}

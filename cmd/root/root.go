package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/limaJavier/graphsat/cmd/batch"
	"github.com/limaJavier/graphsat/cmd/benchmark"
	"github.com/limaJavier/graphsat/cmd/cost"
	"github.com/limaJavier/graphsat/cmd/decide"
	"github.com/limaJavier/graphsat/cmd/encode"
	"github.com/limaJavier/graphsat/cmd/solve"
	"github.com/limaJavier/graphsat/cmd/solvers"
	"github.com/limaJavier/graphsat/pkg/sat"
)

func NewRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "graphsat",
		Short: "graphsat encodes graph coloring and clique problems as DIMACS CNF instances",
		Long: `graphsat reduces "is the graph k-colorable?" and "does the graph hold a clique of size s?"
to boolean satisfiability. Instances are written in DIMACS CNF format and can be solved
in-process (gini) or by an external SAT solver.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String(solvers.ConfigFlag, sat.DefaultConfigPath, "JSON file mapping solver path keys (e.g. \"kissatPath\") to executables")

	// add sub-commands
	rootCmd.AddCommand(encode.NewChromaticCommand())
	rootCmd.AddCommand(encode.NewCliqueCommand())
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(decide.NewDecideCommand())
	rootCmd.AddCommand(cost.NewCostCommand())
	rootCmd.AddCommand(batch.NewBatchCommand())
	rootCmd.AddCommand(benchmark.NewBenchmarkCommand())

	return rootCmd
}

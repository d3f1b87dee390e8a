package benchmark

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/limaJavier/graphsat/cmd/solvers"
	"github.com/limaJavier/graphsat/pkg/batch"
	"github.com/limaJavier/graphsat/pkg/sat"
)

func NewBenchmarkCommand() *cobra.Command {
	var (
		configFile  string
		solverNames []string
		output      string
		isolated    bool
		timeCommand string
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Measures every selected solver on the instances listed in a batch config",
		Long: `Measures every selected solver on the instances listed in a batch config and writes the results as CSV.
With --isolated every instance is solved by a separate "solve" process run under GNU time, which
also reports its peak memory and CPU usage.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := batch.ConfigFromJson(configFile)
			if err != nil {
				return err
			}
			solversConfig := config.SolversConfig
			if solversConfig == "" {
				solversConfig = solvers.ConfigPath(cmd)
			}

			if unknown := lo.Filter(solverNames, func(name string, _ int) bool {
				_, err := sat.NewSolver(name, solversConfig)
				return err != nil
			}); len(unknown) > 0 {
				return fmt.Errorf("%w: %v", sat.ErrUnknownSolver, strings.Join(unknown, ", "))
			}

			tasks, err := batch.Tasks(config)
			if err != nil {
				return err
			}

			var runner measurer
			if isolated {
				executable, err := os.Executable()
				if err != nil {
					return fmt.Errorf("cannot locate own executable: %w", err)
				}
				runner = processMeasurer{
					timeCommand:   timeCommand,
					executable:    executable,
					solversConfig: solversConfig,
					timeout:       timeout,
				}
			} else {
				runner = inProcessMeasurer{solversConfig: solversConfig}
			}

			directory, err := os.MkdirTemp("", "graphsat-benchmark-*")
			if err != nil {
				return fmt.Errorf("cannot create working directory: %w", err)
			}
			defer os.RemoveAll(directory)

			results := make([]Result, 0, len(tasks)*len(solverNames))
			for _, task := range tasks {
				instance, err := task.Instance()
				if err != nil {
					return err
				}
				file := filepath.Join(directory, batch.OutputName(task.Graph, task.Encoder.Name(), task.Target))
				if err := instance.WriteFile(file); err != nil {
					return err
				}

				for _, solver := range solverNames {
					logrus.WithFields(logrus.Fields{
						"graph":   task.Graph,
						"problem": task.Encoder.Name(),
						"target":  task.Target,
						"solver":  solver,
					}).Info("benchmarking")

					result, err := runner.measure(task, instance, file, solver)
					if err != nil {
						return err
					}
					results = append(results, result)
				}
			}

			return toCsv(output, results)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "batch.json", "Path to the batch config file")
	cmd.Flags().StringSliceVar(&solverNames, "solvers", []string{"gini"}, fmt.Sprintf("Solvers to measure, any of: %v", strings.Join(sat.SolverNames(), ", ")))
	cmd.Flags().StringVarP(&output, "out", "o", "benchmark_results.csv", "Path of the CSV file")
	cmd.Flags().BoolVar(&isolated, "isolated", false, "Solve each instance in a separate process measured by GNU time")
	cmd.Flags().StringVar(&timeCommand, "time-command", "/usr/bin/time", "Path of GNU time, used with --isolated")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Kill isolated runs lasting longer than this (0 disables it)")

	return cmd
}

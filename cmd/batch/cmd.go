package batch

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/limaJavier/graphsat/pkg/batch"
)

func NewBatchCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generates (and optionally solves) the instances listed in a JSON config",
		Long: `Generates one DIMACS file per job target listed in a JSON config, for instance:
{
  "outputDirectory": "out",
  "solver": "gini",
  "maxClauses": 1000000,
  "jobs": [
    {"graph": "GraphR1.txt", "chromatic": 4, "clique": 3}
  ]
}
Leave "solver" empty to only write the instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := batch.ConfigFromJson(configFile)
			if err != nil {
				return err
			}

			results, err := batch.Run(config)
			summary := lo.CountValuesBy(results, func(result batch.Result) batch.Status {
				return result.Status
			})
			logrus.WithFields(logrus.Fields{
				"written":       summary[batch.Written],
				"satisfiable":   summary[batch.Satisfiable],
				"unsatisfiable": summary[batch.Unsatisfiable],
			}).Info("batch finished")

			for _, result := range results {
				if result.Output == "" {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%v\t%v\t%d\t%v\n", result.Output, result.Status, result.Clauses, result.Witness)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "batch.json", "Path to the batch config file")

	return cmd
}
